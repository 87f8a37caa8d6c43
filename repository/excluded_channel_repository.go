package repository

import (
	"context"
	"fmt"

	"herald/database"
)

// ExcludedChannelRepository implements the ExcludedChannelRepository interface
type ExcludedChannelRepository struct {
	q queryable
}

// NewExcludedChannelRepository creates a new excluded channel repository
func NewExcludedChannelRepository(db *database.DB) *ExcludedChannelRepository {
	return &ExcludedChannelRepository{q: db.Pool}
}

// Exists reports whether the (guild, channel) pair is excluded
func (r *ExcludedChannelRepository) Exists(ctx context.Context, guildID, channelID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM excluded_channels
			WHERE guild_id = $1 AND channel_id = $2
		)
	`

	var exists bool
	err := r.q.QueryRow(ctx, query, guildID, channelID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check exclusion for channel %s in guild %s: %w", channelID, guildID, err)
	}

	return exists, nil
}

// Add inserts the pair; adding an existing pair is a no-op
func (r *ExcludedChannelRepository) Add(ctx context.Context, guildID, channelID string) error {
	query := `
		INSERT INTO excluded_channels (guild_id, channel_id)
		VALUES ($1, $2)
		ON CONFLICT (guild_id, channel_id) DO NOTHING
	`

	_, err := r.q.Exec(ctx, query, guildID, channelID)
	if err != nil {
		return fmt.Errorf("failed to exclude channel %s in guild %s: %w", channelID, guildID, err)
	}

	return nil
}

// Remove deletes the pair and reports whether a row was removed
func (r *ExcludedChannelRepository) Remove(ctx context.Context, guildID, channelID string) (bool, error) {
	query := `
		DELETE FROM excluded_channels
		WHERE guild_id = $1 AND channel_id = $2
	`

	result, err := r.q.Exec(ctx, query, guildID, channelID)
	if err != nil {
		return false, fmt.Errorf("failed to remove exclusion for channel %s in guild %s: %w", channelID, guildID, err)
	}

	return result.RowsAffected() > 0, nil
}

// ListChannelIDs returns all excluded channel IDs for a guild
func (r *ExcludedChannelRepository) ListChannelIDs(ctx context.Context, guildID string) ([]string, error) {
	query := `
		SELECT channel_id FROM excluded_channels
		WHERE guild_id = $1
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exclusions for guild %s: %w", guildID, err)
	}
	defer rows.Close()

	var channelIDs []string
	for rows.Next() {
		var channelID string
		if err := rows.Scan(&channelID); err != nil {
			return nil, fmt.Errorf("failed to scan excluded channel: %w", err)
		}
		channelIDs = append(channelIDs, channelID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate excluded channels: %w", err)
	}

	return channelIDs, nil
}
