package models

import (
	"time"
)

// Subscription is a (user, guild, email) opt-in for mail notifications.
// The triple is unique; a user may keep several addresses per guild.
type Subscription struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	GuildID   string    `db:"guild_id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}
