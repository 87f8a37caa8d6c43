package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"herald/events"

	log "github.com/sirupsen/logrus"
)

// subscriptionService implements the SubscriptionService interface
type subscriptionService struct {
	subscriptions SubscriptionRepository
	publisher     EventPublisher
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(subscriptions SubscriptionRepository, publisher EventPublisher) SubscriptionService {
	return &subscriptionService{
		subscriptions: subscriptions,
		publisher:     publisher,
	}
}

// Register validates and persists a new subscription
func (s *subscriptionService) Register(ctx context.Context, userID, guildID, email string) error {
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}

	if err := s.subscriptions.Create(ctx, userID, guildID, email); err != nil {
		if errors.Is(err, ErrDuplicateSubscription) {
			return ErrDuplicateSubscription
		}
		return fmt.Errorf("failed to register subscription: %w", err)
	}

	log.WithFields(log.Fields{
		"userID":  userID,
		"guildID": guildID,
	}).Info("Registered email subscription")

	s.publisher.Emit(ctx, events.SubscriptionCreatedEvent{
		UserID:  userID,
		GuildID: guildID,
		Email:   email,
	})

	return nil
}

// Unregister removes every subscription for the user in the guild.
// Removing nothing is a no-op, not an error.
func (s *subscriptionService) Unregister(ctx context.Context, userID, guildID string) error {
	removed, err := s.subscriptions.DeleteByUserAndGuild(ctx, userID, guildID)
	if err != nil {
		return fmt.Errorf("failed to unregister subscriptions: %w", err)
	}

	if removed > 0 {
		log.WithFields(log.Fields{
			"userID":  userID,
			"guildID": guildID,
			"removed": removed,
		}).Info("Removed email subscriptions")

		s.publisher.Emit(ctx, events.SubscriptionRemovedEvent{
			UserID:  userID,
			GuildID: guildID,
			Removed: removed,
		})
	}

	return nil
}

// Status returns one registered email for the user in the guild, or "" when none exist
func (s *subscriptionService) Status(ctx context.Context, userID, guildID string) (string, error) {
	email, err := s.subscriptions.GetEmailForUser(ctx, userID, guildID)
	if err != nil {
		return "", fmt.Errorf("failed to check subscription status: %w", err)
	}
	return email, nil
}
