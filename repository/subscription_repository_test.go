package repository

import (
	"context"
	"testing"

	"herald/repository/testutil"
	"herald/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_Create(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewSubscriptionRepository(testDB.DB)
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		err := repo.Create(ctx, "user1", "guild1", "user1@example.com")
		require.NoError(t, err)

		email, err := repo.GetEmailForUser(ctx, "user1", "guild1")
		require.NoError(t, err)
		assert.Equal(t, "user1@example.com", email)
	})

	t.Run("duplicate triple is rejected", func(t *testing.T) {
		err := repo.Create(ctx, "user2", "guild1", "user2@example.com")
		require.NoError(t, err)

		err = repo.Create(ctx, "user2", "guild1", "user2@example.com")
		assert.ErrorIs(t, err, service.ErrDuplicateSubscription)
	})

	t.Run("same user may hold several addresses per guild", func(t *testing.T) {
		err := repo.Create(ctx, "user3", "guild1", "first@example.com")
		require.NoError(t, err)

		err = repo.Create(ctx, "user3", "guild1", "second@example.com")
		require.NoError(t, err)

		emails, err := repo.ListDistinctEmails(ctx, "guild1")
		require.NoError(t, err)
		assert.Subset(t, emails, []string{"first@example.com", "second@example.com"})
	})

	t.Run("same address allowed in another guild", func(t *testing.T) {
		err := repo.Create(ctx, "user4", "guild1", "user4@example.com")
		require.NoError(t, err)

		err = repo.Create(ctx, "user4", "guild2", "user4@example.com")
		require.NoError(t, err)
	})
}

func TestSubscriptionRepository_GetEmailForUser(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewSubscriptionRepository(testDB.DB)
	ctx := context.Background()

	t.Run("no subscription returns empty string", func(t *testing.T) {
		email, err := repo.GetEmailForUser(ctx, "nobody", "guild1")
		require.NoError(t, err)
		assert.Empty(t, email)
	})

	t.Run("returns a registered address", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, "user1", "guild1", "a@example.com"))
		require.NoError(t, repo.Create(ctx, "user1", "guild1", "b@example.com"))

		email, err := repo.GetEmailForUser(ctx, "user1", "guild1")
		require.NoError(t, err)
		assert.Contains(t, []string{"a@example.com", "b@example.com"}, email)
	})
}

func TestSubscriptionRepository_DeleteByUserAndGuild(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewSubscriptionRepository(testDB.DB)
	ctx := context.Background()

	t.Run("removes every address for the user in the guild", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, "user1", "guild1", "a@example.com"))
		require.NoError(t, repo.Create(ctx, "user1", "guild1", "b@example.com"))
		require.NoError(t, repo.Create(ctx, "user1", "guild2", "a@example.com"))

		removed, err := repo.DeleteByUserAndGuild(ctx, "user1", "guild1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)

		// Other guilds are untouched
		email, err := repo.GetEmailForUser(ctx, "user1", "guild2")
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", email)
	})

	t.Run("deleting nothing reports zero", func(t *testing.T) {
		removed, err := repo.DeleteByUserAndGuild(ctx, "ghost", "guild1")
		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}

func TestSubscriptionRepository_ListDistinctEmails(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewSubscriptionRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty guild returns no recipients", func(t *testing.T) {
		emails, err := repo.ListDistinctEmails(ctx, "guild-empty")
		require.NoError(t, err)
		assert.Empty(t, emails)
	})

	t.Run("shared addresses are deduplicated", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, "user1", "guild1", "shared@example.com"))
		require.NoError(t, repo.Create(ctx, "user2", "guild1", "shared@example.com"))
		require.NoError(t, repo.Create(ctx, "user3", "guild1", "solo@example.com"))
		require.NoError(t, repo.Create(ctx, "user4", "guild2", "other@example.com"))

		emails, err := repo.ListDistinctEmails(ctx, "guild1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"shared@example.com", "solo@example.com"}, emails)
	})
}
