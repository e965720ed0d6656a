package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behavior every backend shares.
func runStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		value, ok, err := store.GetItem(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.SetItem(ctx, "members", `[{"id":1,"name":"Ana"}]`))

		value, ok, err := store.GetItem(ctx, "members")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":1,"name":"Ana"}]`, value)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.SetItem(ctx, "members", `[]`))

		value, ok, err := store.GetItem(ctx, "members")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[]`, value)
	})

	t.Run("empty value is present", func(t *testing.T) {
		require.NoError(t, store.SetItem(ctx, "blank", ""))

		_, ok, err := store.GetItem(ctx, "blank")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.RemoveItem(ctx, "members"))
		require.NoError(t, store.RemoveItem(ctx, "members"), "removing twice is a no-op")

		_, ok, err := store.GetItem(ctx, "members")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, store.SetItem(ctx, "members", "[]"))
		require.NoError(t, store.SetItem(ctx, "transactions", "[]"))
		require.NoError(t, store.Clear(ctx))

		for _, key := range []string{"members", "transactions", "blank"} {
			_, ok, err := store.GetItem(ctx, key)
			require.NoError(t, err)
			assert.False(t, ok, key)
		}
	})
}
