package repository

import (
	"context"
	"testing"

	"herald/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_Create(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewMessageRepository(testDB.DB)
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		msg := testutil.CreateTestMessage("100000000000000001", "guild1")
		err := repo.Create(ctx, msg)
		require.NoError(t, err)
	})

	t.Run("redelivered message is a no-op", func(t *testing.T) {
		msg := testutil.CreateTestMessage("100000000000000002", "guild1")
		require.NoError(t, repo.Create(ctx, msg))

		// Gateway redeliveries reuse the message ID
		dup := testutil.CreateTestMessageInChannel("100000000000000002", "guild1", "another-channel")
		err := repo.Create(ctx, dup)
		assert.NoError(t, err)
	})
}
