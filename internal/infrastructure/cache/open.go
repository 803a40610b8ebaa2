// Package cache selects and opens the configured Cache backend.
package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ersonp/dex-core/internal/domain/ports"
	"github.com/ersonp/dex-core/internal/infrastructure/cache/badger"
	"github.com/ersonp/dex-core/internal/infrastructure/cache/memory"
	"github.com/ersonp/dex-core/internal/infrastructure/cache/sqlite"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
)

// Open returns the backend named by backend, storing its data at path.
func Open(ctx context.Context, backend, path string) (ports.Cache, error) {
	switch backend {
	case config.BackendMemory:
		return memory.NewStore(), nil
	case config.BackendBadger:
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
		store, err := badger.NewStore(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendSQLite, "":
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
		repo, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
