package a

import "context"

type CatalogAPI interface {
	GetCreature(ctx context.Context, ref string) (string, error)
	GetTypeRelations(ctx context.Context, ref string) (string, error)
}

type group struct{}

func (group) Go(fn func() error) { _ = fn() }

func bad(ctx context.Context, refs []string, api CatalogAPI) {
	for _, ref := range refs {
		api.GetCreature(ctx, ref)      // want "sequential upstream call: GetCreature inside loop"
		api.GetTypeRelations(ctx, ref) // want "sequential upstream call: GetTypeRelations inside loop"
	}
}

func good(ctx context.Context, refs []string, api CatalogAPI) {
	var g group
	for _, ref := range refs {
		g.Go(func() error {
			_, err := api.GetCreature(ctx, ref)
			return err
		})
	}

	// No upstream calls - should not flag
	for _, ref := range refs {
		_ = len(ref)
	}
}
