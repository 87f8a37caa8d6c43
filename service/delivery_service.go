package service

import (
	"context"
	"fmt"

	"herald/models"

	log "github.com/sirupsen/logrus"
)

// deliveryService implements the DeliveryService interface
type deliveryService struct {
	subscriptions SubscriptionRepository
	limiter       RateLimiter
	mailer        MailSender
	from          string
}

// NewDeliveryService creates a new delivery fan-out service
func NewDeliveryService(subscriptions SubscriptionRepository, limiter RateLimiter, mailer MailSender, from string) DeliveryService {
	return &deliveryService{
		subscriptions: subscriptions,
		limiter:       limiter,
		mailer:        mailer,
		from:          from,
	}
}

// Deliver resolves the guild's subscriber emails and attempts one send per
// recipient. The recipient set is resolved before the cooldown is claimed so
// a guild without subscribers never consumes its window; the claim happens
// before any send so concurrent deliveries for one guild cannot both fan out.
func (s *deliveryService) Deliver(ctx context.Context, guildID string, notification *models.Notification) (*models.DeliveryReport, error) {
	emails, err := s.subscriptions.ListDistinctEmails(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipients: %w", err)
	}

	report := &models.DeliveryReport{}
	if len(emails) == 0 {
		return report, nil
	}

	claimed, err := s.limiter.TryAcquire(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		report.RateLimited = true
		return report, nil
	}

	subject := fmt.Sprintf("New message in %s", notification.GuildName)
	body := renderNotification(notification)

	// One attempt per recipient; a failure never stops the rest of the fan-out
	for _, to := range emails {
		if err := s.mailer.Send(ctx, s.from, to, subject, body); err != nil {
			log.WithFields(log.Fields{
				"guildID": guildID,
				"to":      to,
				"err":     err,
			}).Error("Failed to deliver notification email")
			report.Failed++
			report.FailedEmails = append(report.FailedEmails, to)
			continue
		}
		report.Sent++
	}

	return report, nil
}

// SendConfirmation sends the post-registration confirmation mail
func (s *deliveryService) SendConfirmation(ctx context.Context, guildName, email string) error {
	subject := fmt.Sprintf("Notifications enabled for %s", guildName)
	body := fmt.Sprintf(
		"Message notifications have been set up.\n"+
			"Server: %s\n\n"+
			"New message notifications will be sent to this address.\n"+
			"To stop them, run /cancel in the server.\n\n"+
			"If you did not request this, please reply to this email.\n",
		guildName,
	)

	if err := s.mailer.Send(ctx, s.from, email, subject, body); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

func renderNotification(n *models.Notification) string {
	return fmt.Sprintf(
		"New message:\n"+
			"Server: %s\n"+
			"Channel: %s\n"+
			"Author: %s\n"+
			"Content: %s\n"+
			"URL: %s\n",
		n.GuildName,
		n.ChannelName,
		n.AuthorName,
		n.Content,
		n.PermalinkURL,
	)
}
