package repository

import (
	"context"
	"fmt"

	"herald/database"

	"github.com/jackc/pgx/v5"
)

// GuildModeRepository implements the GuildModeRepository interface
type GuildModeRepository struct {
	q queryable
}

// NewGuildModeRepository creates a new guild mode repository
func NewGuildModeRepository(db *database.DB) *GuildModeRepository {
	return &GuildModeRepository{q: db.Pool}
}

// GetDevMode returns the guild's development mode flag, false when no row exists
func (r *GuildModeRepository) GetDevMode(ctx context.Context, guildID string) (bool, error) {
	query := `
		SELECT dev_mode FROM guild_modes
		WHERE guild_id = $1
	`

	var devMode bool
	err := r.q.QueryRow(ctx, query, guildID).Scan(&devMode)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get mode for guild %s: %w", guildID, err)
	}

	return devMode, nil
}

// SetDevMode upserts the guild's development mode flag
func (r *GuildModeRepository) SetDevMode(ctx context.Context, guildID string, devMode bool) error {
	query := `
		INSERT INTO guild_modes (guild_id, dev_mode)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE SET dev_mode = EXCLUDED.dev_mode
	`

	_, err := r.q.Exec(ctx, query, guildID, devMode)
	if err != nil {
		return fmt.Errorf("failed to set mode for guild %s: %w", guildID, err)
	}

	return nil
}
