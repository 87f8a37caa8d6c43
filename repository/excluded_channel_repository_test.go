package repository

import (
	"context"
	"testing"

	"herald/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcludedChannelRepository_AddAndExists(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewExcludedChannelRepository(testDB.DB)
	ctx := context.Background()

	t.Run("unexcluded channel does not exist", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "guild1", "chan1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("added channel exists", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, "guild1", "chan1"))

		exists, err := repo.Exists(ctx, "guild1", "chan1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("adding twice is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, "guild1", "chan2"))
		require.NoError(t, repo.Add(ctx, "guild1", "chan2"))

		channelIDs, err := repo.ListChannelIDs(ctx, "guild1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"chan1", "chan2"}, channelIDs)
	})

	t.Run("exclusions are scoped to the guild", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "guild2", "chan1")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestExcludedChannelRepository_Remove(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewExcludedChannelRepository(testDB.DB)
	ctx := context.Background()

	t.Run("removing an exclusion reports true", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, "guild1", "chan1"))

		removed, err := repo.Remove(ctx, "guild1", "chan1")
		require.NoError(t, err)
		assert.True(t, removed)

		exists, err := repo.Exists(ctx, "guild1", "chan1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("removing an absent pair reports false", func(t *testing.T) {
		removed, err := repo.Remove(ctx, "guild1", "chan-missing")
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestExcludedChannelRepository_ListChannelIDs(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewExcludedChannelRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty guild lists nothing", func(t *testing.T) {
		channelIDs, err := repo.ListChannelIDs(ctx, "guild-empty")
		require.NoError(t, err)
		assert.Empty(t, channelIDs)
	})

	t.Run("lists only the guild's exclusions", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, "guild1", "chan1"))
		require.NoError(t, repo.Add(ctx, "guild1", "chan2"))
		require.NoError(t, repo.Add(ctx, "guild2", "chan3"))

		channelIDs, err := repo.ListChannelIDs(ctx, "guild1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"chan1", "chan2"}, channelIDs)
	})
}
