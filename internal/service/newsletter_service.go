package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/jewelry-store/internal/domain"
	"github.com/spec-kit/jewelry-store/internal/events"
	"github.com/spec-kit/jewelry-store/internal/repository"
)

// NewsletterService manages newsletter opt-in and opt-out.
type NewsletterService struct {
	subscribers repository.SubscriberRepository
	dispatcher  events.Dispatcher
}

// NewNewsletterService builds the service.
func NewNewsletterService(subscribers repository.SubscriberRepository, dispatcher events.Dispatcher) *NewsletterService {
	return &NewsletterService{subscribers: subscribers, dispatcher: dispatcher}
}

// Subscribe records a subscriber, reactivating a prior opt-out.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	return s.subscribers.Subscribe(ctx, email)
}

// Unsubscribe deactivates a subscriber. Opting out an unknown address is a
// no-op success: the response must not reveal whether the address was on the
// list.
func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	err := s.subscribers.Unsubscribe(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventNewsletterUnsubscribed,
			Timestamp: time.Now(),
			Payload:   events.NewsletterUnsubscribedPayload{Email: email},
		})
	}
	return nil
}
