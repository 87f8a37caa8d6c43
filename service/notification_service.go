package service

import (
	"context"
	"fmt"

	"herald/events"
	"herald/models"

	log "github.com/sirupsen/logrus"
)

// notificationService is the orchestrator invoked for each inbound message
type notificationService struct {
	exclusions ExclusionService
	limiter    RateLimiter
	delivery   DeliveryService
	messages   MessageRepository
	publisher  EventPublisher
}

// NewNotificationService creates the notification orchestrator
func NewNotificationService(
	exclusions ExclusionService,
	limiter RateLimiter,
	delivery DeliveryService,
	messages MessageRepository,
	publisher EventPublisher,
) NotificationService {
	return &notificationService{
		exclusions: exclusions,
		limiter:    limiter,
		delivery:   delivery,
		messages:   messages,
		publisher:  publisher,
	}
}

// HandleMessage runs the gating pipeline for one inbound message: bot filter,
// channel exclusion, message logging, cooldown gate, then fan-out
func (s *notificationService) HandleMessage(ctx context.Context, event *models.MessageEvent) error {
	if event.AuthorIsBot {
		return nil
	}

	excluded, err := s.exclusions.IsExcluded(ctx, event.GuildID, event.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to check channel exclusion: %w", err)
	}
	if excluded {
		log.WithFields(log.Fields{
			"guildID":   event.GuildID,
			"channelID": event.ChannelID,
		}).Debug("Skipping message from excluded channel")
		return nil
	}

	// Logging the message must not block the notification path
	if err := s.messages.Create(ctx, &models.Message{
		ID:        event.ID,
		GuildID:   event.GuildID,
		ChannelID: event.ChannelID,
		AuthorID:  event.AuthorID,
		Content:   event.Content,
	}); err != nil {
		log.WithFields(log.Fields{
			"messageID": event.ID,
			"guildID":   event.GuildID,
			"err":       err,
		}).Error("Failed to log message")
	}

	// Cheap pre-check; the delivery service re-checks atomically before sending
	eligible, err := s.limiter.CanSend(ctx, event.GuildID)
	if err != nil {
		return fmt.Errorf("failed to check send eligibility: %w", err)
	}
	if !eligible {
		log.WithFields(log.Fields{
			"guildID": event.GuildID,
		}).Debug("Skipping notification due to rate limit")
		return nil
	}

	report, err := s.delivery.Deliver(ctx, event.GuildID, &models.Notification{
		GuildName:    event.GuildName,
		ChannelName:  event.ChannelName,
		AuthorName:   event.AuthorName,
		Content:      event.Content,
		PermalinkURL: event.PermalinkURL,
	})
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}

	if report.RateLimited {
		log.WithFields(log.Fields{
			"guildID": event.GuildID,
		}).Debug("Lost send window to a concurrent delivery")
		return nil
	}

	if report.Attempted() > 0 {
		log.WithFields(log.Fields{
			"guildID": event.GuildID,
			"sent":    report.Sent,
			"failed":  report.Failed,
		}).Info("Notification fan-out completed")

		s.publisher.Emit(ctx, events.NotificationSentEvent{
			GuildID:   event.GuildID,
			GuildName: event.GuildName,
			Sent:      report.Sent,
			Failed:    report.Failed,
		})
	}

	return nil
}
