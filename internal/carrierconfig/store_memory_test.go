package carrierconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosscall/pkg/platform/sentinel"
)

func TestMemoryStore_PutAndFetch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, 1, Config{KeyCrossNetworkAvailable: true}))

	cfg, err := store.ConfigFor(ctx, 1)
	require.NoError(t, err)
	assert.True(t, cfg.Bool(KeyCrossNetworkAvailable))
}

func TestMemoryStore_AbsentLine(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.ConfigFor(context.Background(), 7)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, 1, Config{KeyCrossNetworkAvailable: true}))
	require.NoError(t, store.Delete(ctx, 1))

	_, err := store.ConfigFor(ctx, 1)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestConfig_Bool(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		var cfg Config
		assert.False(t, cfg.Bool(KeyCrossNetworkAvailable))
	})

	t.Run("missing key defaults to false", func(t *testing.T) {
		cfg := Config{"other_key": true}
		assert.False(t, cfg.Bool(KeyCrossNetworkAvailable))
	})

	t.Run("non-boolean value defaults to false", func(t *testing.T) {
		cfg := Config{KeyCrossNetworkAvailable: "yes"}
		assert.False(t, cfg.Bool(KeyCrossNetworkAvailable))
	})

	t.Run("explicit false", func(t *testing.T) {
		cfg := Config{KeyCrossNetworkAvailable: false}
		assert.False(t, cfg.Bool(KeyCrossNetworkAvailable))
	})

	t.Run("explicit true", func(t *testing.T) {
		cfg := Config{KeyCrossNetworkAvailable: true}
		assert.True(t, cfg.Bool(KeyCrossNetworkAvailable))
	})
}
