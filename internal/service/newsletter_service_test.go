package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/jewelry-store/internal/domain"
	"github.com/spec-kit/jewelry-store/internal/events"
)

func TestUnsubscribeDeactivatesSubscriber(t *testing.T) {
	repo := newFakeSubscriberRepo(&domain.Subscriber{
		ID:           "sub-1",
		Email:        "a@b.com",
		Active:       true,
		SubscribedAt: time.Now().Add(-24 * time.Hour),
	})
	dispatcher := &recordingDispatcher{}
	svc := NewNewsletterService(repo, dispatcher)

	require.NoError(t, svc.Unsubscribe(context.Background(), "a@b.com"))

	sub := repo.subscribers["a@b.com"]
	require.False(t, sub.Active)
	require.NotNil(t, sub.UnsubscribedAt)

	published := dispatcher.published()
	require.Len(t, published, 1)
	require.Equal(t, events.EventNewsletterUnsubscribed, published[0].Type)
}

func TestUnsubscribeUnknownEmailIsSilentSuccess(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	svc := NewNewsletterService(newFakeSubscriberRepo(), dispatcher)

	require.NoError(t, svc.Unsubscribe(context.Background(), "ghost@example.com"))
	require.Empty(t, dispatcher.published())
}

func TestSubscribeReactivatesOptedOutSubscriber(t *testing.T) {
	unsubscribedAt := time.Now()
	repo := newFakeSubscriberRepo(&domain.Subscriber{
		ID:             "sub-1",
		Email:          "a@b.com",
		Active:         false,
		SubscribedAt:   time.Now().Add(-48 * time.Hour),
		UnsubscribedAt: &unsubscribedAt,
	})
	svc := NewNewsletterService(repo, nil)

	sub, err := svc.Subscribe(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.True(t, sub.Active)
	require.Nil(t, sub.UnsubscribedAt)
}
