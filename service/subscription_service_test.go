package service

import (
	"context"
	"errors"
	"testing"

	"herald/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration emits event", func(t *testing.T) {
		subscriptions := new(MockSubscriptionRepository)
		publisher := new(MockEventPublisher)
		subscriptions.On("Create", ctx, "user1", "guild1", "user1@example.com").Return(nil)
		publisher.On("Emit", ctx, events.SubscriptionCreatedEvent{
			UserID:  "user1",
			GuildID: "guild1",
			Email:   "user1@example.com",
		}).Return()

		svc := NewSubscriptionService(subscriptions, publisher)

		err := svc.Register(ctx, "user1", "guild1", "user1@example.com")
		require.NoError(t, err)

		subscriptions.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("address without @ is rejected before the store", func(t *testing.T) {
		subscriptions := new(MockSubscriptionRepository)
		publisher := new(MockEventPublisher)

		svc := NewSubscriptionService(subscriptions, publisher)

		err := svc.Register(ctx, "user1", "guild1", "not-an-email")
		assert.ErrorIs(t, err, ErrInvalidEmail)

		subscriptions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate registration surfaces as ErrDuplicateSubscription", func(t *testing.T) {
		subscriptions := new(MockSubscriptionRepository)
		publisher := new(MockEventPublisher)
		subscriptions.On("Create", ctx, "user1", "guild1", "user1@example.com").Return(ErrDuplicateSubscription)

		svc := NewSubscriptionService(subscriptions, publisher)

		err := svc.Register(ctx, "user1", "guild1", "user1@example.com")
		assert.ErrorIs(t, err, ErrDuplicateSubscription)

		publisher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		subscriptions := new(MockSubscriptionRepository)
		publisher := new(MockEventPublisher)
		subscriptions.On("Create", ctx, "user1", "guild1", "user1@example.com").Return(errors.New("connection lost"))

		svc := NewSubscriptionService(subscriptions, publisher)

		err := svc.Register(ctx, "user1", "guild1", "user1@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to register subscription")
	})
}

func TestSubscriptionService_Unregister(t *testing.T) {
	ctx := context.Background()

	t.Run("removal emits event with the count", func(t *testing.T) {
		subscriptions := new(MockSubscriptionRepository)
		publisher := new(MockEventPublisher)
		subscriptions.On("DeleteByUserAndGuild", ctx, "user1", "guild1").Return(int64(2), nil)
		publisher.On("Emit", ctx, events.SubscriptionRemovedEvent{
			UserID:  "user1",
			GuildID: "guild1",
			Removed: 2,
		}).Return()

		svc := NewSubscriptionService(subscriptions, publisher)

		err := svc.Unregister(ctx, "user1", "guild1")
		require.NoError(t, err)

		publisher.AssertExpectations(t)
	})

	t.Run("removing nothing is a silent no-op", func(t *testing.T) {
		subscriptions := new(MockSubscriptionRepository)
		publisher := new(MockEventPublisher)
		subscriptions.On("DeleteByUserAndGuild", ctx, "user1", "guild1").Return(int64(0), nil)

		svc := NewSubscriptionService(subscriptions, publisher)

		err := svc.Unregister(ctx, "user1", "guild1")
		require.NoError(t, err)

		publisher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}

func TestSubscriptionService_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the registered address", func(t *testing.T) {
		subscriptions := new(MockSubscriptionRepository)
		publisher := new(MockEventPublisher)
		subscriptions.On("GetEmailForUser", ctx, "user1", "guild1").Return("user1@example.com", nil)

		svc := NewSubscriptionService(subscriptions, publisher)

		email, err := svc.Status(ctx, "user1", "guild1")
		require.NoError(t, err)
		assert.Equal(t, "user1@example.com", email)
	})

	t.Run("no subscription returns empty string", func(t *testing.T) {
		subscriptions := new(MockSubscriptionRepository)
		publisher := new(MockEventPublisher)
		subscriptions.On("GetEmailForUser", ctx, "user1", "guild1").Return("", nil)

		svc := NewSubscriptionService(subscriptions, publisher)

		email, err := svc.Status(ctx, "user1", "guild1")
		require.NoError(t, err)
		assert.Empty(t, email)
	})
}
