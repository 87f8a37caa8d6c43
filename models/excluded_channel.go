package models

import (
	"time"
)

// ExcludedChannel marks a channel whose messages never trigger
// persistence or notification for its guild
type ExcludedChannel struct {
	ID        int64     `db:"id"`
	GuildID   string    `db:"guild_id"`
	ChannelID string    `db:"channel_id"`
	CreatedAt time.Time `db:"created_at"`
}
