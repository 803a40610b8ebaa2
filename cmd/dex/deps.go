package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/ports"
	"github.com/ersonp/dex-core/internal/domain/services"
	"github.com/ersonp/dex-core/internal/infrastructure/cache"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
	"github.com/ersonp/dex-core/internal/infrastructure/pokeapi"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config         *config.Config
	Assets         ports.AssetFetcher
	ListingHandler *handlers.ListingHandler
	DetailHandler  *handlers.DetailHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	backend := cfg.Cache.Backend
	if noCache {
		backend = config.BackendMemory
	}
	store, err := cache.Open(ctx, backend, cfg.CachePath(cwd))
	if err != nil {
		return fmt.Errorf("opening %s cache: %w", backend, err)
	}
	defer store.Close()

	client := pokeapi.NewClient(pokeapi.Options{
		BaseURL:    cfg.API.BaseURL,
		SpriteURL:  cfg.API.SpriteURL,
		ArtworkURL: cfg.API.ArtworkURL,
		Timeout:    cfg.API.Timeout,
	}, logger.Named("pokeapi"))

	catalogService := services.NewCatalogService(client, client, store, logger.Named("catalog"), services.CatalogOptions{
		Limit:       cfg.Catalog.Limit,
		Concurrency: cfg.API.Concurrency,
	})
	detailService := services.NewDetailService(client, logger.Named("detail"), services.DetailOptions{
		Limit:    cfg.Catalog.Limit,
		Language: cfg.Catalog.Language,
	})

	deps := &Deps{
		Config:         cfg,
		Assets:         client,
		ListingHandler: handlers.NewListingHandler(catalogService),
		DetailHandler:  handlers.NewDetailHandler(detailService),
	}

	return fn(deps)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
