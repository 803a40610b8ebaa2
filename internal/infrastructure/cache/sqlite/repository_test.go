package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(":memory:")
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository("")
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	var count int
	err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='kv'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	// Should not error when called again
	err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
}

func TestRepository_GetSet(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "pokemonList")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "pokemonList", []byte(`[{"id":1}]`)))

	value, ok, err := repo.Get(ctx, "pokemonList")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":1}]`), value)
}

func TestRepository_SetOverwrites(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	original := timeNow
	t.Cleanup(func() { timeNow = original })

	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return first }
	require.NoError(t, repo.Set(ctx, "pokemonTypes", []byte(`["fire"]`)))

	second := first.Add(time.Hour)
	timeNow = func() time.Time { return second }
	require.NoError(t, repo.Set(ctx, "pokemonTypes", []byte(`["fire","water"]`)))

	value, ok, err := repo.Get(ctx, "pokemonTypes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`["fire","water"]`), value)

	ts, ok, err := repo.UpdatedAt(ctx, "pokemonTypes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, second.Equal(ts), "got %v", ts)
}

func TestRepository_Delete(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "pokemonList", []byte("x")))
	require.NoError(t, repo.Delete(ctx, "pokemonList"))

	_, ok, err := repo.Get(ctx, "pokemonList")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is fine.
	require.NoError(t, repo.Delete(ctx, "pokemonList"))
}

func TestOpen_PersistsAcrossConnections(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	repo, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, "pokemonList", []byte("persisted")))
	require.NoError(t, repo.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "pokemonList")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("persisted"), value)
}
