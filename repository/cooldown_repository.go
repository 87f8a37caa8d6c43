package repository

import (
	"context"
	"fmt"
	"time"

	"herald/database"

	"github.com/jackc/pgx/v5"
)

// CooldownRepository implements the CooldownRepository interface
type CooldownRepository struct {
	q queryable
}

// NewCooldownRepository creates a new cooldown repository
func NewCooldownRepository(db *database.DB) *CooldownRepository {
	return &CooldownRepository{q: db.Pool}
}

// GetLastSent returns when the guild last had a notification sent,
// or nil when it never has
func (r *CooldownRepository) GetLastSent(ctx context.Context, guildID string) (*time.Time, error) {
	query := `
		SELECT last_sent_at FROM email_cooldowns
		WHERE guild_id = $1
	`

	var lastSentAt time.Time
	err := r.q.QueryRow(ctx, query, guildID).Scan(&lastSentAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cooldown for guild %s: %w", guildID, err)
	}

	return &lastSentAt, nil
}

// UpsertLastSent unconditionally overwrites the guild's last-sent timestamp
func (r *CooldownRepository) UpsertLastSent(ctx context.Context, guildID string, at time.Time) error {
	query := `
		INSERT INTO email_cooldowns (guild_id, last_sent_at)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE SET last_sent_at = EXCLUDED.last_sent_at
	`

	_, err := r.q.Exec(ctx, query, guildID, at)
	if err != nil {
		return fmt.Errorf("failed to record send for guild %s: %w", guildID, err)
	}

	return nil
}

// ClaimWindow atomically advances the guild's last-sent timestamp to at, but
// only when no row exists or the stored timestamp is not after cutoff. Two
// concurrent claims for the same guild cannot both apply: the row update is
// serialized by the store, and whichever statement runs second sees the
// timestamp the first one wrote.
func (r *CooldownRepository) ClaimWindow(ctx context.Context, guildID string, at, cutoff time.Time) (bool, error) {
	query := `
		INSERT INTO email_cooldowns (guild_id, last_sent_at)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE SET last_sent_at = EXCLUDED.last_sent_at
		WHERE email_cooldowns.last_sent_at <= $3
	`

	result, err := r.q.Exec(ctx, query, guildID, at, cutoff)
	if err != nil {
		return false, fmt.Errorf("failed to claim send window for guild %s: %w", guildID, err)
	}

	return result.RowsAffected() > 0, nil
}
