package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimiter(cooldowns CooldownRepository, modes GuildModeRepository, window time.Duration, now time.Time) *rateLimiter {
	limiter := NewRateLimiter(cooldowns, modes, window).(*rateLimiter)
	limiter.now = func() time.Time { return now }
	return limiter
}

func TestRateLimiter_CanSend(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("development mode is always eligible", func(t *testing.T) {
		cooldowns := new(MockCooldownRepository)
		modes := new(MockGuildModeRepository)
		modes.On("GetDevMode", ctx, "guild1").Return(true, nil)

		limiter := newTestRateLimiter(cooldowns, modes, time.Hour, now)

		eligible, err := limiter.CanSend(ctx, "guild1")
		require.NoError(t, err)
		assert.True(t, eligible)

		cooldowns.AssertNotCalled(t, "GetLastSent", ctx, "guild1")
	})

	t.Run("no prior send is eligible", func(t *testing.T) {
		cooldowns := new(MockCooldownRepository)
		modes := new(MockGuildModeRepository)
		modes.On("GetDevMode", ctx, "guild1").Return(false, nil)
		cooldowns.On("GetLastSent", ctx, "guild1").Return(nil, nil)

		limiter := newTestRateLimiter(cooldowns, modes, time.Hour, now)

		eligible, err := limiter.CanSend(ctx, "guild1")
		require.NoError(t, err)
		assert.True(t, eligible)
	})

	t.Run("send inside the window is blocked", func(t *testing.T) {
		lastSent := now.Add(-30 * time.Minute)

		cooldowns := new(MockCooldownRepository)
		modes := new(MockGuildModeRepository)
		modes.On("GetDevMode", ctx, "guild1").Return(false, nil)
		cooldowns.On("GetLastSent", ctx, "guild1").Return(&lastSent, nil)

		limiter := newTestRateLimiter(cooldowns, modes, time.Hour, now)

		eligible, err := limiter.CanSend(ctx, "guild1")
		require.NoError(t, err)
		assert.False(t, eligible)
	})

	t.Run("send exactly one window later is eligible", func(t *testing.T) {
		lastSent := now.Add(-time.Hour)

		cooldowns := new(MockCooldownRepository)
		modes := new(MockGuildModeRepository)
		modes.On("GetDevMode", ctx, "guild1").Return(false, nil)
		cooldowns.On("GetLastSent", ctx, "guild1").Return(&lastSent, nil)

		limiter := newTestRateLimiter(cooldowns, modes, time.Hour, now)

		eligible, err := limiter.CanSend(ctx, "guild1")
		require.NoError(t, err)
		assert.True(t, eligible)
	})

	t.Run("send past the window is eligible", func(t *testing.T) {
		lastSent := now.Add(-90 * time.Minute)

		cooldowns := new(MockCooldownRepository)
		modes := new(MockGuildModeRepository)
		modes.On("GetDevMode", ctx, "guild1").Return(false, nil)
		cooldowns.On("GetLastSent", ctx, "guild1").Return(&lastSent, nil)

		limiter := newTestRateLimiter(cooldowns, modes, time.Hour, now)

		eligible, err := limiter.CanSend(ctx, "guild1")
		require.NoError(t, err)
		assert.True(t, eligible)
	})
}

func TestRateLimiter_RecordSend(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	cooldowns := new(MockCooldownRepository)
	modes := new(MockGuildModeRepository)
	cooldowns.On("UpsertLastSent", ctx, "guild1", now).Return(nil)

	limiter := newTestRateLimiter(cooldowns, modes, time.Hour, now)

	err := limiter.RecordSend(ctx, "guild1")
	require.NoError(t, err)

	cooldowns.AssertExpectations(t)
}

func TestRateLimiter_TryAcquire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("claim won", func(t *testing.T) {
		cooldowns := new(MockCooldownRepository)
		modes := new(MockGuildModeRepository)
		modes.On("GetDevMode", ctx, "guild1").Return(false, nil)
		cooldowns.On("ClaimWindow", ctx, "guild1", now, now.Add(-time.Hour)).Return(true, nil)

		limiter := newTestRateLimiter(cooldowns, modes, time.Hour, now)

		claimed, err := limiter.TryAcquire(ctx, "guild1")
		require.NoError(t, err)
		assert.True(t, claimed)

		cooldowns.AssertExpectations(t)
	})

	t.Run("claim lost", func(t *testing.T) {
		cooldowns := new(MockCooldownRepository)
		modes := new(MockGuildModeRepository)
		modes.On("GetDevMode", ctx, "guild1").Return(false, nil)
		cooldowns.On("ClaimWindow", ctx, "guild1", now, now.Add(-time.Hour)).Return(false, nil)

		limiter := newTestRateLimiter(cooldowns, modes, time.Hour, now)

		claimed, err := limiter.TryAcquire(ctx, "guild1")
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("development mode bypasses the claim", func(t *testing.T) {
		cooldowns := new(MockCooldownRepository)
		modes := new(MockGuildModeRepository)
		modes.On("GetDevMode", ctx, "guild1").Return(true, nil)
		cooldowns.On("UpsertLastSent", ctx, "guild1", now).Return(nil)

		limiter := newTestRateLimiter(cooldowns, modes, time.Hour, now)

		claimed, err := limiter.TryAcquire(ctx, "guild1")
		require.NoError(t, err)
		assert.True(t, claimed)

		cooldowns.AssertNotCalled(t, "ClaimWindow", ctx, "guild1", now, now.Add(-time.Hour))
		cooldowns.AssertExpectations(t)
	})
}
