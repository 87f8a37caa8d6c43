package service

import (
	"context"
	"time"

	"herald/events"
	"herald/models"
)

// MessageRepository defines the interface for the message log
type MessageRepository interface {
	// Create appends a message to the log
	Create(ctx context.Context, message *models.Message) error
}

// SubscriptionRepository defines the interface for subscription data access
type SubscriptionRepository interface {
	// Create persists a new (user, guild, email) subscription.
	// Returns ErrDuplicateSubscription when the triple already exists.
	Create(ctx context.Context, userID, guildID, email string) error

	// DeleteByUserAndGuild removes every subscription for the user in the
	// guild and returns how many rows were removed
	DeleteByUserAndGuild(ctx context.Context, userID, guildID string) (int64, error)

	// GetEmailForUser returns one registered email for the user in the guild,
	// or "" when none exist
	GetEmailForUser(ctx context.Context, userID, guildID string) (string, error)

	// ListDistinctEmails returns the deduplicated subscriber emails of a guild
	ListDistinctEmails(ctx context.Context, guildID string) ([]string, error)
}

// GuildModeRepository defines the interface for the per-guild mode flag
type GuildModeRepository interface {
	// GetDevMode returns the guild's development mode flag, false when no row exists
	GetDevMode(ctx context.Context, guildID string) (bool, error)

	// SetDevMode upserts the guild's development mode flag
	SetDevMode(ctx context.Context, guildID string, devMode bool) error
}

// CooldownRepository defines the interface for the per-guild send timestamp
type CooldownRepository interface {
	// GetLastSent returns when the guild last had a notification sent,
	// or nil when it never has
	GetLastSent(ctx context.Context, guildID string) (*time.Time, error)

	// UpsertLastSent unconditionally overwrites the guild's last-sent timestamp
	UpsertLastSent(ctx context.Context, guildID string, at time.Time) error

	// ClaimWindow atomically sets the guild's last-sent timestamp to at, but
	// only if no row exists or the current timestamp is not after cutoff.
	// Returns whether the update applied. This is the conditional update that
	// closes the check-then-act race between concurrent deliveries.
	ClaimWindow(ctx context.Context, guildID string, at, cutoff time.Time) (bool, error)
}

// ExcludedChannelRepository defines the interface for exclusion data access
type ExcludedChannelRepository interface {
	// Exists reports whether the (guild, channel) pair is excluded
	Exists(ctx context.Context, guildID, channelID string) (bool, error)

	// Add inserts the pair; adding an existing pair is a no-op
	Add(ctx context.Context, guildID, channelID string) error

	// Remove deletes the pair and reports whether a row was removed
	Remove(ctx context.Context, guildID, channelID string) (bool, error)

	// ListChannelIDs returns all excluded channel IDs for a guild
	ListChannelIDs(ctx context.Context, guildID string) ([]string, error)
}

// MailSender defines the mail transport contract: one call per recipient
type MailSender interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}

// SubscriptionService defines the interface for subscriber registry operations
type SubscriptionService interface {
	// Register validates and persists a new subscription. The caller is
	// expected to trigger a confirmation delivery on success.
	Register(ctx context.Context, userID, guildID, email string) error

	// Unregister removes every subscription for the user in the guild;
	// removing nothing is not an error
	Unregister(ctx context.Context, userID, guildID string) error

	// Status returns one registered email for the user in the guild,
	// or "" when none exist
	Status(ctx context.Context, userID, guildID string) (string, error)
}

// ExclusionService defines the interface for exclusion management
type ExclusionService interface {
	// IsExcluded reports whether the channel is excluded for the guild
	IsExcluded(ctx context.Context, guildID, channelID string) (bool, error)

	// Add excludes a channel; idempotent
	Add(ctx context.Context, guildID, channelID string) error

	// Remove un-excludes a channel; ErrNotFound when the pair is absent
	Remove(ctx context.Context, guildID, channelID string) error

	// List returns all excluded channel IDs for a guild
	List(ctx context.Context, guildID string) ([]string, error)
}

// GuildModeService defines the interface for guild mode operations
type GuildModeService interface {
	// Get returns the guild's development mode flag, default false
	Get(ctx context.Context, guildID string) (bool, error)

	// Set upserts the guild's development mode flag
	Set(ctx context.Context, guildID string, devMode bool) error
}

// RateLimiter gates notification sends on a per-guild cooldown window
type RateLimiter interface {
	// CanSend reports whether the guild is currently eligible for a send.
	// Development mode forces eligibility regardless of the last send.
	CanSend(ctx context.Context, guildID string) (bool, error)

	// RecordSend unconditionally marks a send as having happened now
	RecordSend(ctx context.Context, guildID string) error

	// TryAcquire atomically checks eligibility and records the send in one
	// store operation, returning whether this caller won the window
	TryAcquire(ctx context.Context, guildID string) (bool, error)
}

// DeliveryService fans a notification out to every subscriber of a guild
type DeliveryService interface {
	// Deliver resolves the guild's subscriber emails and attempts one send
	// per recipient, isolating per-recipient failures. An empty recipient set
	// returns immediately without consuming the cooldown window.
	Deliver(ctx context.Context, guildID string, notification *models.Notification) (*models.DeliveryReport, error)

	// SendConfirmation sends the post-registration confirmation mail
	SendConfirmation(ctx context.Context, guildName, email string) error
}

// NotificationService is the orchestrator invoked for each inbound message
type NotificationService interface {
	HandleMessage(ctx context.Context, event *models.MessageEvent) error
}
