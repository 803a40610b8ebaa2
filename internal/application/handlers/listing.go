package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// ListingHandler handles catalog listing operations.
type ListingHandler struct {
	catalog *services.CatalogService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(catalog *services.CatalogService) *ListingHandler {
	return &ListingHandler{
		catalog: catalog,
	}
}

// ListingResult contains one filtered view of the catalog.
type ListingResult struct {
	Entries     []entities.CatalogEntry `json:"entries"`
	Matched     int                     `json:"matched"`
	Total       int                     `json:"total"`
	Suggestions []string                `json:"suggestions,omitempty"`
}

// HandleList loads the catalog and applies the query.
func (h *ListingHandler) HandleList(ctx context.Context, query services.ListingQuery) (*ListingResult, error) {
	all, err := h.catalog.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return Filter(all, query), nil
}

// Filter applies query to an already loaded catalog.
func Filter(all []entities.CatalogEntry, query services.ListingQuery) *ListingResult {
	shown, matched := services.FilterEntries(all, query)

	result := &ListingResult{
		Entries: shown,
		Matched: matched,
		Total:   len(all),
	}
	if matched == 0 && query.Term != "" {
		result.Suggestions = services.Suggest(all, query.Term, services.MaxSuggestions)
	}
	return result
}

// HandleTypes returns the type vocabulary.
func (h *ListingHandler) HandleTypes(ctx context.Context) ([]string, error) {
	types, err := h.catalog.Types(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading types: %w", err)
	}
	return types, nil
}

// HandleClearCache drops the memoized listing and vocabulary.
func (h *ListingHandler) HandleClearCache(ctx context.Context) error {
	return h.catalog.Clear(ctx)
}

// WarmResult reports what a cache warm-up did.
type WarmResult struct {
	Entries        int `json:"entries"`
	Types          int `json:"types"`
	SpritesFetched int `json:"sprites_fetched"`
	SpritesFailed  int `json:"sprites_failed"`
	// CachedAt is when the listing was written, zero if the backend does
	// not track it.
	CachedAt time.Time `json:"cached_at,omitzero"`
}

// HandleWarm populates the cache and optionally prefetches list sprites.
func (h *ListingHandler) HandleWarm(ctx context.Context, images bool) (*WarmResult, error) {
	all, err := h.catalog.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	types, err := h.catalog.Types(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading types: %w", err)
	}

	result := &WarmResult{Entries: len(all), Types: len(types)}
	if at, ok, err := h.catalog.CachedAt(ctx); err != nil {
		return nil, fmt.Errorf("checking cache time: %w", err)
	} else if ok {
		result.CachedAt = at
	}
	if images {
		ids := make([]int, len(all))
		for i, e := range all {
			ids[i] = e.ID
		}
		result.SpritesFailed = h.catalog.PrefetchSprites(ctx, ids)
		result.SpritesFetched = len(ids) - result.SpritesFailed
	}
	return result, nil
}
