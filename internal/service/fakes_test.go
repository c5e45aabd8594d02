package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/jewelry-store/internal/domain"
	"github.com/spec-kit/jewelry-store/internal/events"
	"github.com/spec-kit/jewelry-store/internal/repository"
)

type fakeAdminRepo struct {
	admins     map[string]*domain.Admin
	lastLogins map[string]time.Time
}

func newFakeAdminRepo(admins ...*domain.Admin) *fakeAdminRepo {
	repo := &fakeAdminRepo{
		admins:     make(map[string]*domain.Admin),
		lastLogins: make(map[string]time.Time),
	}
	for _, admin := range admins {
		repo.admins[admin.Email] = admin
	}
	return repo
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	admin.ID = "adm-" + strconv.Itoa(len(r.admins)+1)
	r.admins[admin.Email] = admin
	return nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	for _, admin := range r.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	admin, ok := r.admins[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

func (r *fakeAdminRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.lastLogins[id] = at
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*domain.Category
	nextID     int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.categories))
	for _, cat := range r.categories {
		out = append(out, *cat)
	}
	return out, nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	cat, ok := r.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *cat
	return &copied, nil
}

func (r *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	for _, cat := range r.categories {
		if cat.Slug == slug {
			copied := *cat
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCategoryRepo) Create(_ context.Context, cat *domain.Category) error {
	r.nextID++
	cat.ID = "cat-" + strconv.Itoa(r.nextID)
	cat.CreatedAt = time.Now()
	cat.UpdatedAt = cat.CreatedAt
	copied := *cat
	r.categories[cat.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, cat *domain.Category) error {
	if _, ok := r.categories[cat.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *cat
	r.categories[cat.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.categories, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*domain.Order

	listFilters  *repository.OrderListFilters
	statsCalls   int
	statsResult  domain.OrderStats
	createdCount int
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[string]*domain.Order)}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return repo
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.createdCount++
	order.ID = "ord-" + strconv.Itoa(r.createdCount)
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByRef(_ context.Context, ref string) (*domain.Order, error) {
	for _, order := range r.orders {
		if order.OrderRef == ref {
			return order, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return order, nil
}

func (r *fakeOrderRepo) List(_ context.Context, filters repository.OrderListFilters) ([]domain.OrderListItem, int64, error) {
	r.listFilters = &filters
	items := make([]domain.OrderListItem, 0, len(r.orders))
	for _, order := range r.orders {
		items = append(items, domain.OrderListItem{
			ID:            order.ID,
			OrderRef:      order.OrderRef,
			CustomerName:  order.CustomerName,
			CustomerEmail: order.CustomerEmail,
			Status:        order.Status,
			PaymentStatus: order.PaymentStatus,
			TotalAmount:   order.TotalAmount,
			ItemCount:     len(order.Items),
			CreatedAt:     order.CreatedAt,
		})
	}
	return items, int64(len(items)), nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	order, ok := r.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) Stats(_ context.Context) (*domain.OrderStats, error) {
	r.statsCalls++
	stats := r.statsResult
	return &stats, nil
}

type fakeSubscriberRepo struct {
	subscribers map[string]*domain.Subscriber
}

func newFakeSubscriberRepo(subs ...*domain.Subscriber) *fakeSubscriberRepo {
	repo := &fakeSubscriberRepo{subscribers: make(map[string]*domain.Subscriber)}
	for _, sub := range subs {
		repo.subscribers[sub.Email] = sub
	}
	return repo
}

func (r *fakeSubscriberRepo) GetByEmail(_ context.Context, email string) (*domain.Subscriber, error) {
	sub, ok := r.subscribers[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return sub, nil
}

func (r *fakeSubscriberRepo) Subscribe(_ context.Context, email string) (*domain.Subscriber, error) {
	if sub, ok := r.subscribers[email]; ok {
		sub.Active = true
		sub.UnsubscribedAt = nil
		return sub, nil
	}
	sub := &domain.Subscriber{
		ID:           "sub-" + strconv.Itoa(len(r.subscribers)+1),
		Email:        email,
		Active:       true,
		SubscribedAt: time.Now(),
	}
	r.subscribers[email] = sub
	return sub, nil
}

func (r *fakeSubscriberRepo) Unsubscribe(_ context.Context, email string) error {
	sub, ok := r.subscribers[email]
	if !ok {
		return pgx.ErrNoRows
	}
	now := time.Now()
	sub.Active = false
	sub.UnsubscribedAt = &now
	return nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
