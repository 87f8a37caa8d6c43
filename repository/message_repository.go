package repository

import (
	"context"
	"fmt"

	"herald/database"
	"herald/models"
)

// MessageRepository implements the MessageRepository interface
type MessageRepository struct {
	q queryable
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *database.DB) *MessageRepository {
	return &MessageRepository{q: db.Pool}
}

// Create appends a message to the log
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (id, guild_id, channel_id, author_id, content)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.q.Exec(ctx, query,
		message.ID,
		message.GuildID,
		message.ChannelID,
		message.AuthorID,
		message.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to log message %s: %w", message.ID, err)
	}

	return nil
}
