package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex-core/internal/domain/ports"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name        string
		backend     string
		path        string
		timestamped bool
	}{
		{name: "sqlite", backend: config.BackendSQLite, path: filepath.Join(dir, "nested", "cache.db"), timestamped: true},
		{name: "badger", backend: config.BackendBadger, path: filepath.Join(dir, "badger")},
		{name: "memory", backend: config.BackendMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			c, err := Open(ctx, tt.backend, tt.path)
			require.NoError(t, err)
			defer c.Close()

			require.NoError(t, c.Set(ctx, "pokemonList", []byte("[]")))
			value, ok, err := c.Get(ctx, "pokemonList")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("[]"), value)

			ts, ok := c.(ports.Timestamped)
			require.Equal(t, tt.timestamped, ok)
			if ok {
				_, found, err := ts.UpdatedAt(ctx, "pokemonList")
				require.NoError(t, err)
				assert.True(t, found)
			}
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "redis", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cache backend")
}
