// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// CatalogAPI is a mock implementation of ports.CatalogAPI.
// Records are keyed by the ref the service passes in.
type CatalogAPI struct {
	Resources []entities.Resource
	Creatures map[string]*entities.Creature
	Species   map[string]*entities.Species
	Relations map[string]*entities.TypeRelations
	Chains    map[string]*entities.ChainLink
	Types     []string

	// Err fails every call. FailRefs fails only the listed refs.
	Err      error
	FailRefs map[string]error

	mu    sync.Mutex
	calls map[string]int
}

// NewCatalogAPI creates an empty mock CatalogAPI.
func NewCatalogAPI() *CatalogAPI {
	return &CatalogAPI{
		Creatures: make(map[string]*entities.Creature),
		Species:   make(map[string]*entities.Species),
		Relations: make(map[string]*entities.TypeRelations),
		Chains:    make(map[string]*entities.ChainLink),
		FailRefs:  make(map[string]error),
		calls:     make(map[string]int),
	}
}

// Calls returns how many times the named method was invoked.
func (m *CatalogAPI) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *CatalogAPI) record(method, ref string) error {
	m.mu.Lock()
	m.calls[method]++
	m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if err, ok := m.FailRefs[ref]; ok {
		return err
	}
	return nil
}

// ListCreatures returns up to limit configured resources.
func (m *CatalogAPI) ListCreatures(_ context.Context, limit int) ([]entities.Resource, error) {
	if err := m.record("ListCreatures", ""); err != nil {
		return nil, err
	}
	if limit > len(m.Resources) {
		limit = len(m.Resources)
	}
	return m.Resources[:limit], nil
}

// GetCreature returns the creature stored under ref.
func (m *CatalogAPI) GetCreature(_ context.Context, ref string) (*entities.Creature, error) {
	if err := m.record("GetCreature", ref); err != nil {
		return nil, err
	}
	c, ok := m.Creatures[ref]
	if !ok {
		return nil, fmt.Errorf("creature %q not found", ref)
	}
	return c, nil
}

// GetSpecies returns the species stored under ref.
func (m *CatalogAPI) GetSpecies(_ context.Context, ref string) (*entities.Species, error) {
	if err := m.record("GetSpecies", ref); err != nil {
		return nil, err
	}
	s, ok := m.Species[ref]
	if !ok {
		return nil, fmt.Errorf("species %q not found", ref)
	}
	return s, nil
}

// GetTypeRelations returns the relations stored under ref.
func (m *CatalogAPI) GetTypeRelations(_ context.Context, ref string) (*entities.TypeRelations, error) {
	if err := m.record("GetTypeRelations", ref); err != nil {
		return nil, err
	}
	r, ok := m.Relations[ref]
	if !ok {
		return nil, fmt.Errorf("type %q not found", ref)
	}
	return r, nil
}

// ListTypes returns the configured vocabulary.
func (m *CatalogAPI) ListTypes(_ context.Context) ([]string, error) {
	if err := m.record("ListTypes", ""); err != nil {
		return nil, err
	}
	return m.Types, nil
}

// GetEvolutionChain returns the chain stored under ref.
func (m *CatalogAPI) GetEvolutionChain(_ context.Context, ref string) (*entities.ChainLink, error) {
	if err := m.record("GetEvolutionChain", ref); err != nil {
		return nil, err
	}
	c, ok := m.Chains[ref]
	if !ok {
		return nil, fmt.Errorf("chain %q not found", ref)
	}
	return c, nil
}
