// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// CatalogAPI defines the read-only upstream data source.
// A ref is either a bare identifier/name or an absolute URL taken from a
// previous response.
type CatalogAPI interface {
	// ListCreatures returns the first limit creature references in catalog order.
	ListCreatures(ctx context.Context, limit int) ([]entities.Resource, error)

	// GetCreature fetches one creature record.
	GetCreature(ctx context.Context, ref string) (*entities.Creature, error)

	// GetSpecies fetches the species record for an identifier.
	GetSpecies(ctx context.Context, ref string) (*entities.Species, error)

	// GetTypeRelations fetches the damage relations of one type.
	GetTypeRelations(ctx context.Context, ref string) (*entities.TypeRelations, error)

	// ListTypes returns the type vocabulary.
	ListTypes(ctx context.Context) ([]string, error)

	// GetEvolutionChain fetches the root link of an evolution chain.
	GetEvolutionChain(ctx context.Context, ref string) (*entities.ChainLink, error)
}

// AssetFetcher retrieves static image assets.
type AssetFetcher interface {
	// SpriteURL returns the list sprite address for an identifier.
	SpriteURL(id int) string

	// ArtworkURL returns the detail artwork address for an identifier.
	ArtworkURL(id int) string

	// FetchAsset downloads the asset and discards it.
	FetchAsset(ctx context.Context, url string) error
}
