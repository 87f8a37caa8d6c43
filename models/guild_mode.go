package models

// GuildMode holds the per-guild development mode flag.
// Development mode disables the notification cooldown entirely.
type GuildMode struct {
	GuildID string `db:"guild_id"`
	DevMode bool   `db:"dev_mode"`
}
