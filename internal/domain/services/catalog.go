package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// Cache keys for the memoized listing and type vocabulary.
const (
	CacheKeyList  = "pokemonList"
	CacheKeyTypes = "pokemonTypes"
)

// Catalog defaults.
const (
	DefaultCatalogLimit = 151
	DefaultConcurrency  = 16
)

// CatalogOptions configures a CatalogService.
type CatalogOptions struct {
	Limit       int
	Concurrency int
}

// CatalogService loads the catalog listing and type vocabulary, memoizing
// both in the cache.
type CatalogService struct {
	api     ports.CatalogAPI
	assets  ports.AssetFetcher
	cache   ports.Cache
	logger  *zap.Logger
	limit   int
	workers int
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(api ports.CatalogAPI, assets ports.AssetFetcher, cache ports.Cache, logger *zap.Logger, opts CatalogOptions) *CatalogService {
	if opts.Limit <= 0 {
		opts.Limit = DefaultCatalogLimit
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return &CatalogService{
		api:     api,
		assets:  assets,
		cache:   cache,
		logger:  logger,
		limit:   opts.Limit,
		workers: opts.Concurrency,
	}
}

// Limit returns the catalog size.
func (s *CatalogService) Limit() int {
	return s.limit
}

// Entries returns the full catalog, from the cache when present.
func (s *CatalogService) Entries(ctx context.Context) ([]entities.CatalogEntry, error) {
	var cached []entities.CatalogEntry
	hit, err := s.loadCached(ctx, CacheKeyList, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		s.logger.Debug("catalog served from cache", zap.Int("entries", len(cached)))
		return cached, nil
	}

	entries, err := s.fetchEntries(ctx)
	if err != nil {
		return nil, err
	}

	s.storeCached(ctx, CacheKeyList, entries)
	s.logger.Info("catalog fetched", zap.Int("entries", len(entries)))
	return entries, nil
}

// fetchEntries lists the catalog and resolves every entry's types
// concurrently. The first failure aborts the whole load.
func (s *CatalogService) fetchEntries(ctx context.Context) ([]entities.CatalogEntry, error) {
	resources, err := s.api.ListCreatures(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}

	entries := make([]entities.CatalogEntry, len(resources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, res := range resources {
		g.Go(func() error {
			creature, err := s.api.GetCreature(gctx, res.URL)
			if err != nil {
				return fmt.Errorf("fetching %s: %w", res.Name, err)
			}
			entries[i] = entities.CatalogEntry{
				ID:    i + 1,
				Name:  res.Name,
				URL:   res.URL,
				Types: creature.TypeNames(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Types returns the type vocabulary, from the cache when present.
func (s *CatalogService) Types(ctx context.Context) ([]string, error) {
	var cached []string
	hit, err := s.loadCached(ctx, CacheKeyTypes, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		return cached, nil
	}

	types, err := s.api.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing types: %w", err)
	}

	s.storeCached(ctx, CacheKeyTypes, types)
	return types, nil
}

// CachedAt reports when the listing was last memoized. ok is false when the
// listing is not cached or the backend does not track write times.
func (s *CatalogService) CachedAt(ctx context.Context) (time.Time, bool, error) {
	ts, isTimestamped := s.cache.(ports.Timestamped)
	if !isTimestamped {
		return time.Time{}, false, nil
	}
	at, ok, err := ts.UpdatedAt(ctx, CacheKeyList)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("reading cache time: %w", err)
	}
	return at, ok, nil
}

// Clear drops the memoized listing and vocabulary.
func (s *CatalogService) Clear(ctx context.Context) error {
	for _, key := range []string{CacheKeyList, CacheKeyTypes} {
		if err := s.cache.Delete(ctx, key); err != nil {
			return fmt.Errorf("deleting cache key %s: %w", key, err)
		}
	}
	s.logger.Info("catalog cache cleared")
	return nil
}

// PrefetchSprites downloads the list sprites for ids. Failures are logged
// and counted, never returned.
func (s *CatalogService) PrefetchSprites(ctx context.Context, ids []int) int {
	if s.assets == nil {
		return 0
	}

	failed := make([]bool, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, id := range ids {
		g.Go(func() error {
			url := s.assets.SpriteURL(id)
			if err := s.assets.FetchAsset(gctx, url); err != nil {
				s.logger.Warn("sprite prefetch failed", zap.Int("id", id), zap.String("url", url), zap.Error(err))
				failed[i] = true
			}
			return nil
		})
	}
	_ = g.Wait()

	n := 0
	for _, f := range failed {
		if f {
			n++
		}
	}
	return n
}

func (s *CatalogService) loadCached(ctx context.Context, key string, dst any) (bool, error) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("reading cache key %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// A corrupt entry is treated as a miss and refetched.
		s.logger.Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// storeCached memoizes value under key. Write failures are logged, not returned.
func (s *CatalogService) storeCached(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("encoding cache entry failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		s.logger.Warn("writing cache entry failed", zap.String("key", key), zap.Error(err))
	}
}
