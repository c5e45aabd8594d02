package domain

import "time"

// Subscriber is a newsletter recipient record.
type Subscriber struct {
	ID             string
	Email          string
	Active         bool
	SubscribedAt   time.Time
	UnsubscribedAt *time.Time
}
