package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storebill/storebill/internal/storage"
)

func TestBridge(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "test.db")
	bridge, err := New(dbPath)
	require.NoError(t, err, "New must create parent directories")
	defer bridge.Close()

	ctx := context.Background()

	t.Run("Get on missing key returns ErrNoKey", func(t *testing.T) {
		_, err := bridge.Get(ctx, "neverWritten")
		require.ErrorIs(t, err, storage.ErrNoKey)
	})

	t.Run("Set then Get round-trips", func(t *testing.T) {
		require.NoError(t, bridge.Set(ctx, storage.KeyBillingHistory, []byte(`[{"id":"b1"}]`)))

		got, err := bridge.Get(ctx, storage.KeyBillingHistory)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"id":"b1"}]`), got)
	})

	t.Run("Set replaces the previous value", func(t *testing.T) {
		require.NoError(t, bridge.Set(ctx, storage.KeyAllProducts, []byte(`["old"]`)))
		require.NoError(t, bridge.Set(ctx, storage.KeyAllProducts, []byte(`["new"]`)))

		got, err := bridge.Get(ctx, storage.KeyAllProducts)
		require.NoError(t, err)
		assert.Equal(t, []byte(`["new"]`), got)
	})
}

func TestBridgeSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	first, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "key", []byte("durable")))
	require.NoError(t, first.Close())

	second, err := New(dbPath)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("durable"), got)
}
