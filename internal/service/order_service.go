package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/jewelry-store/internal/domain"
	"github.com/spec-kit/jewelry-store/internal/events"
	"github.com/spec-kit/jewelry-store/internal/persistence"
	"github.com/spec-kit/jewelry-store/internal/repository"
	apperrors "github.com/spec-kit/jewelry-store/pkg/util"
)

const (
	statsCacheKey = "admin:order_stats"

	defaultListLimit = 20
	maxListLimit     = 100
)

// OrderItemInput describes one checkout line.
type OrderItemInput struct {
	ProductName   string
	Customization string
	Quantity      int
	UnitPrice     float64
}

// PlaceOrderInput carries everything needed to record a new order.
type PlaceOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	Notes           string
	Items           []OrderItemInput
}

// OrderService covers public order tracking and the admin order surface.
type OrderService struct {
	orders     repository.OrderRepository
	cache      *persistence.Redis
	dispatcher events.Dispatcher
	logger     *zap.Logger
	statsTTL   time.Duration
}

// NewOrderService builds the service. The cache may be nil; stats then always
// hit the store.
func NewOrderService(orders repository.OrderRepository, cache *persistence.Redis, dispatcher events.Dispatcher, logger *zap.Logger, statsTTL time.Duration) *OrderService {
	return &OrderService{
		orders:     orders,
		cache:      cache,
		dispatcher: dispatcher,
		logger:     logger,
		statsTTL:   statsTTL,
	}
}

// PlaceOrder records a new order awaiting payment and returns it with its
// public reference.
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperrors.NewValidationError("order requires at least one item", nil)
	}

	order := &domain.Order{
		OrderRef:        NewOrderRef(),
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		ShippingAddress: input.ShippingAddress,
		Status:          domain.OrderStatusPending,
		PaymentStatus:   domain.PaymentStatusUnpaid,
		Notes:           input.Notes,
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductName:   item.ProductName,
			Customization: item.Customization,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
		})
		order.TotalAmount += float64(item.Quantity) * item.UnitPrice
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventOrderPlaced, events.OrderPlacedPayload{
		OrderID:       order.ID,
		OrderRef:      order.OrderRef,
		CustomerEmail: order.CustomerEmail,
		TotalAmount:   order.TotalAmount,
	})
	return order, nil
}

// TrackOrder resolves an order by its public reference.
func (s *OrderService) TrackOrder(ctx context.Context, ref string) (*domain.Order, error) {
	order, err := s.orders.GetByRef(ctx, ref)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("order", map[string]any{"order_ref": ref})
	}
	return order, err
}

// ListOrders returns the admin listing with paging defaults applied.
func (s *OrderService) ListOrders(ctx context.Context, filters repository.OrderListFilters) ([]domain.OrderListItem, int64, error) {
	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}
	if filters.Limit > maxListLimit {
		filters.Limit = maxListLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
	return s.orders.List(ctx, filters)
}

// UpdateOrderStatus moves an order to a new fulfillment state and notifies
// listeners of the transition.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown order status", map[string]any{"status": status})
	}

	order, err := s.orders.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("order", map[string]any{"id": id})
	}
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if oldStatus == status {
		return order, nil
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", map[string]any{"id": id})
		}
		return nil, err
	}
	order.Status = status

	s.publish(ctx, events.EventOrderStatusChanged, events.OrderStatusChangedPayload{
		OrderID:       order.ID,
		OrderRef:      order.OrderRef,
		CustomerEmail: order.CustomerEmail,
		OldStatus:     oldStatus,
		NewStatus:     status,
	})
	return order, nil
}

// Stats returns dashboard aggregates, served from the Redis cache when fresh.
// Cache failures degrade to a direct store read.
func (s *OrderService) Stats(ctx context.Context) (*domain.OrderStats, error) {
	if cached, ok, err := s.cache.GetCached(ctx, statsCacheKey); err != nil {
		s.logger.Warn("stats cache read failed", zap.Error(err))
	} else if ok {
		var stats domain.OrderStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		s.logger.Warn("discarding malformed stats cache entry")
	}

	stats, err := s.orders.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(stats); err == nil {
		if err := s.cache.SetCached(ctx, statsCacheKey, string(encoded), s.statsTTL); err != nil {
			s.logger.Warn("stats cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

func (s *OrderService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

// NewOrderRef generates a short public order reference.
func NewOrderRef() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
