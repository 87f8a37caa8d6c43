package models

import (
	"time"
)

// Message is a logged chat message from a watched channel
type Message struct {
	ID        string    `db:"id"`
	GuildID   string    `db:"guild_id"`
	ChannelID string    `db:"channel_id"`
	AuthorID  string    `db:"author_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

// MessageEvent is an inbound message as delivered by the chat platform.
// It is consumed once per arrival and never persisted as-is; the display
// names and permalink are supplied by the platform adapter.
type MessageEvent struct {
	ID           string
	GuildID      string
	GuildName    string
	ChannelID    string
	ChannelName  string
	AuthorID     string
	AuthorName   string
	AuthorIsBot  bool
	Content      string
	PermalinkURL string
}
