package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// Detail defaults.
const (
	DefaultLanguage           = "es"
	DefaultDescriptionMissing = "Descripción no disponible"
)

// DetailOptions configures a DetailService.
type DetailOptions struct {
	Limit       int
	Language    string
	Placeholder string
}

// DetailService assembles the detail record for one identifier.
type DetailService struct {
	api         ports.CatalogAPI
	logger      *zap.Logger
	nav         Navigator
	language    string
	placeholder string
}

// NewDetailService creates a new DetailService.
func NewDetailService(api ports.CatalogAPI, logger *zap.Logger, opts DetailOptions) *DetailService {
	if opts.Limit <= 0 {
		opts.Limit = DefaultCatalogLimit
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultDescriptionMissing
	}
	return &DetailService{
		api:         api,
		logger:      logger,
		nav:         NewNavigator(opts.Limit),
		language:    opts.Language,
		placeholder: opts.Placeholder,
	}
}

// Navigator returns the identifier bounds used by the service.
func (s *DetailService) Navigator() Navigator {
	return s.nav
}

// Detail fetches the entity, its species, type relations and evolution chain
// and derives the weakness summary and evolution path.
func (s *DetailService) Detail(ctx context.Context, id int) (*entities.DetailRecord, error) {
	if !s.nav.Contains(id) {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, id, s.nav.Min, s.nav.Max)
	}
	ref := strconv.Itoa(id)

	var (
		creature *entities.Creature
		species  *entities.Species
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.api.GetCreature(gctx, ref)
		if err != nil {
			return fmt.Errorf("fetching entity %d: %w", id, err)
		}
		creature = c
		return nil
	})
	g.Go(func() error {
		sp, err := s.api.GetSpecies(gctx, ref)
		if err != nil {
			return fmt.Errorf("fetching species %d: %w", id, err)
		}
		species = sp
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	weaknesses, err := s.weaknesses(ctx, creature)
	if err != nil {
		return nil, err
	}

	evolutions, err := s.evolutions(ctx, species)
	if err != nil {
		return nil, err
	}

	return &entities.DetailRecord{
		CatalogEntry: entities.CatalogEntry{
			ID:    creature.ID,
			Name:  creature.Name,
			Types: creature.TypeNames(),
		},
		Stats:       creature.Stats,
		Description: s.description(species),
		Genus:       s.genus(species),
		Height:      creature.Height,
		Weight:      creature.Weight,
		Weaknesses:  weaknesses,
		Evolutions:  evolutions,
	}, nil
}

// weaknesses fetches every type's relations into slot-indexed positions so
// the aggregation order does not depend on which response arrives first.
func (s *DetailService) weaknesses(ctx context.Context, creature *entities.Creature) ([]entities.WeaknessEntry, error) {
	relations := make([]entities.TypeRelations, len(creature.Types))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range creature.Types {
		g.Go(func() error {
			typeRef := t.URL
			if typeRef == "" {
				typeRef = t.Name
			}
			rel, err := s.api.GetTypeRelations(gctx, typeRef)
			if err != nil {
				return fmt.Errorf("fetching type %s: %w", t.Name, err)
			}
			relations[i] = *rel
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return AggregateWeaknesses(relations), nil
}

func (s *DetailService) evolutions(ctx context.Context, species *entities.Species) ([]entities.EvolutionNode, error) {
	if species.EvolutionChainURL == "" {
		s.logger.Debug("species has no evolution chain", zap.Int("id", species.ID))
		return nil, nil
	}

	root, err := s.api.GetEvolutionChain(ctx, species.EvolutionChainURL)
	if err != nil {
		return nil, fmt.Errorf("fetching evolution chain: %w", err)
	}

	if dropped := DroppedBranches(root); dropped > 0 {
		s.logger.Debug("collapsed branching evolution chain",
			zap.Int("id", species.ID),
			zap.Int("dropped", dropped))
	}

	nodes, err := FlattenChain(root)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

func (s *DetailService) description(species *entities.Species) string {
	for _, ft := range species.FlavorTexts {
		if ft.Language == s.language {
			return strings.ReplaceAll(ft.Text, "\f", " ")
		}
	}
	s.logger.Debug("no localized description",
		zap.Int("id", species.ID),
		zap.String("language", s.language))
	return s.placeholder
}

func (s *DetailService) genus(species *entities.Species) string {
	for _, g := range species.Genera {
		if g.Language == s.language {
			return g.Genus
		}
	}
	return ""
}
