package models

import (
	"time"
)

// Cooldown records when a guild last had a notification sent.
// At most one row per guild; each send overwrites the timestamp.
type Cooldown struct {
	GuildID    string    `db:"guild_id"`
	LastSentAt time.Time `db:"last_sent_at"`
}
