package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/jewelry-store/internal/domain"
)

// SubscriberRepository defines persistence access for newsletter subscribers.
type SubscriberRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	Subscribe(ctx context.Context, email string) (*domain.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
}

type subscriberRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriberRepository returns a Postgres-backed implementation.
func NewSubscriberRepository(pool *pgxpool.Pool) SubscriberRepository {
	return &subscriberRepository{pool: pool}
}

func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	const query = `
        SELECT id, email, is_active, subscribed_at, unsubscribed_at
        FROM newsletter_subscribers WHERE email=$1`

	var sub domain.Subscriber
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&sub.ID,
		&sub.Email,
		&sub.Active,
		&sub.SubscribedAt,
		&sub.UnsubscribedAt,
	); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Subscribe inserts a new subscriber or reactivates a previously
// unsubscribed one.
func (r *subscriberRepository) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	const query = `
        INSERT INTO newsletter_subscribers (email)
        VALUES ($1)
        ON CONFLICT (email) DO UPDATE
            SET is_active=TRUE, unsubscribed_at=NULL
        RETURNING id, email, is_active, subscribed_at, unsubscribed_at`

	var sub domain.Subscriber
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&sub.ID,
		&sub.Email,
		&sub.Active,
		&sub.SubscribedAt,
		&sub.UnsubscribedAt,
	); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepository) Unsubscribe(ctx context.Context, email string) error {
	const query = `
        UPDATE newsletter_subscribers
        SET is_active=FALSE, unsubscribed_at=NOW()
        WHERE email=$1`

	cmd, err := r.pool.Exec(ctx, query, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
