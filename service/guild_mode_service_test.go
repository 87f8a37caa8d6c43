package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildModeService(t *testing.T) {
	ctx := context.Background()

	t.Run("get defaults to production", func(t *testing.T) {
		modes := new(MockGuildModeRepository)
		modes.On("GetDevMode", ctx, "guild1").Return(false, nil)

		svc := NewGuildModeService(modes)

		devMode, err := svc.Get(ctx, "guild1")
		require.NoError(t, err)
		assert.False(t, devMode)
	})

	t.Run("set forwards the flag", func(t *testing.T) {
		modes := new(MockGuildModeRepository)
		modes.On("SetDevMode", ctx, "guild1", true).Return(nil)

		svc := NewGuildModeService(modes)

		err := svc.Set(ctx, "guild1", true)
		require.NoError(t, err)

		modes.AssertExpectations(t)
	})
}
