package events

import (
	"time"

	"github.com/spec-kit/jewelry-store/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderPlaced            EventType = "order_placed"
	EventOrderStatusChanged     EventType = "order_status_changed"
	EventNewsletterUnsubscribed EventType = "newsletter_unsubscribed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderID       string  `json:"order_id"`
	OrderRef      string  `json:"order_ref"`
	CustomerEmail string  `json:"customer_email"`
	TotalAmount   float64 `json:"total_amount"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OrderID       string             `json:"order_id"`
	OrderRef      string             `json:"order_ref"`
	CustomerEmail string             `json:"customer_email"`
	OldStatus     domain.OrderStatus `json:"old_status"`
	NewStatus     domain.OrderStatus `json:"new_status"`
}

// NewsletterUnsubscribedPayload payload.
type NewsletterUnsubscribedPayload struct {
	Email string `json:"email"`
}
