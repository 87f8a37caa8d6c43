package service

import (
	"context"
	"fmt"
	"time"
)

// rateLimiter implements the RateLimiter interface over a single per-guild
// last-sent timestamp. Development mode bypasses the window entirely.
type rateLimiter struct {
	cooldowns CooldownRepository
	modes     GuildModeRepository
	window    time.Duration
	now       func() time.Time
}

// NewRateLimiter creates a new rate limiter with the given cooldown window
func NewRateLimiter(cooldowns CooldownRepository, modes GuildModeRepository, window time.Duration) RateLimiter {
	return &rateLimiter{
		cooldowns: cooldowns,
		modes:     modes,
		window:    window,
		now:       time.Now,
	}
}

// CanSend reports whether the guild is currently eligible for a send
func (l *rateLimiter) CanSend(ctx context.Context, guildID string) (bool, error) {
	devMode, err := l.modes.GetDevMode(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to check guild mode: %w", err)
	}
	if devMode {
		return true, nil
	}

	lastSentAt, err := l.cooldowns.GetLastSent(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to check cooldown: %w", err)
	}
	if lastSentAt == nil {
		return true, nil
	}

	// Inclusive boundary: a check exactly one window after the last send is eligible
	return l.now().Sub(*lastSentAt) >= l.window, nil
}

// RecordSend unconditionally marks a send as having happened now
func (l *rateLimiter) RecordSend(ctx context.Context, guildID string) error {
	if err := l.cooldowns.UpsertLastSent(ctx, guildID, l.now()); err != nil {
		return fmt.Errorf("failed to record send: %w", err)
	}
	return nil
}

// TryAcquire atomically checks eligibility and records the send. Two events
// for the same guild racing through the gate cannot both win: the conditional
// upsert is the single store operation that decides.
func (l *rateLimiter) TryAcquire(ctx context.Context, guildID string) (bool, error) {
	devMode, err := l.modes.GetDevMode(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to check guild mode: %w", err)
	}

	now := l.now()
	if devMode {
		// No window to claim, but the timestamp still advances so flipping
		// back to production starts from the latest send
		if err := l.cooldowns.UpsertLastSent(ctx, guildID, now); err != nil {
			return false, fmt.Errorf("failed to record send: %w", err)
		}
		return true, nil
	}

	claimed, err := l.cooldowns.ClaimWindow(ctx, guildID, now, now.Add(-l.window))
	if err != nil {
		return false, fmt.Errorf("failed to claim send window: %w", err)
	}
	return claimed, nil
}
