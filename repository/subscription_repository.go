package repository

import (
	"context"
	"errors"
	"fmt"

	"herald/database"
	"herald/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations
const pgUniqueViolation = "23505"

// SubscriptionRepository implements the SubscriptionRepository interface
type SubscriptionRepository struct {
	q queryable
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *database.DB) *SubscriptionRepository {
	return &SubscriptionRepository{q: db.Pool}
}

// Create persists a new (user, guild, email) subscription
func (r *SubscriptionRepository) Create(ctx context.Context, userID, guildID, email string) error {
	query := `
		INSERT INTO subscriptions (user_id, guild_id, email)
		VALUES ($1, $2, $3)
	`

	_, err := r.q.Exec(ctx, query, userID, guildID, email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return service.ErrDuplicateSubscription
		}
		return fmt.Errorf("failed to create subscription for user %s in guild %s: %w", userID, guildID, err)
	}

	return nil
}

// DeleteByUserAndGuild removes every subscription for the user in the guild
func (r *SubscriptionRepository) DeleteByUserAndGuild(ctx context.Context, userID, guildID string) (int64, error) {
	query := `
		DELETE FROM subscriptions
		WHERE user_id = $1 AND guild_id = $2
	`

	result, err := r.q.Exec(ctx, query, userID, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete subscriptions for user %s in guild %s: %w", userID, guildID, err)
	}

	return result.RowsAffected(), nil
}

// GetEmailForUser returns one registered email for the user in the guild,
// or "" when none exist
func (r *SubscriptionRepository) GetEmailForUser(ctx context.Context, userID, guildID string) (string, error) {
	query := `
		SELECT email FROM subscriptions
		WHERE user_id = $1 AND guild_id = $2
		ORDER BY created_at
		LIMIT 1
	`

	var email string
	err := r.q.QueryRow(ctx, query, userID, guildID).Scan(&email)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get subscription for user %s in guild %s: %w", userID, guildID, err)
	}

	return email, nil
}

// ListDistinctEmails returns the deduplicated subscriber emails of a guild
func (r *SubscriptionRepository) ListDistinctEmails(ctx context.Context, guildID string) ([]string, error) {
	query := `
		SELECT DISTINCT email FROM subscriptions
		WHERE guild_id = $1
	`

	rows, err := r.q.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriber emails for guild %s: %w", guildID, err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber email: %w", err)
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscriber emails: %w", err)
	}

	return emails, nil
}
