package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// FlattenChain walks an evolution chain from its root, following only the
// first successor at every step, and returns one node per visited link.
// Alternate branches are dropped; see DroppedBranches.
func FlattenChain(root *entities.ChainLink) ([]entities.EvolutionNode, error) {
	nodes := make([]entities.EvolutionNode, 0, 3)

	for link := root; link != nil; link = firstSuccessor(link) {
		id, err := ParseResourceID(link.Species.URL)
		if err != nil {
			return nil, fmt.Errorf("%w: species %q: %v", ErrMalformedChain, link.Species.Name, err)
		}

		trigger := link.Trigger
		if trigger == "" {
			trigger = entities.DefaultTrigger
		}

		nodes = append(nodes, entities.EvolutionNode{
			ID:      id,
			Name:    link.Species.Name,
			Trigger: trigger,
		})
	}

	return nodes, nil
}

// DroppedBranches counts the links FlattenChain never visits: every successor
// past the first at each step, together with everything below it.
func DroppedBranches(root *entities.ChainLink) int {
	dropped := 0
	for link := root; link != nil; link = firstSuccessor(link) {
		for i := 1; i < len(link.EvolvesTo); i++ {
			dropped += countLinks(&link.EvolvesTo[i])
		}
	}
	return dropped
}

func countLinks(link *entities.ChainLink) int {
	n := 1
	for i := range link.EvolvesTo {
		n += countLinks(&link.EvolvesTo[i])
	}
	return n
}

func firstSuccessor(link *entities.ChainLink) *entities.ChainLink {
	if len(link.EvolvesTo) == 0 {
		return nil
	}
	return &link.EvolvesTo[0]
}

// ParseResourceID extracts the numeric identifier from an upstream resource
// URL such as ".../pokemon-species/25/".
func ParseResourceID(url string) (int, error) {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	segment := trimmed[idx+1:]
	if segment == "" {
		return 0, fmt.Errorf("no identifier in %q", url)
	}

	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("parsing identifier from %q: %w", url, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("non-positive identifier in %q", url)
	}
	return id, nil
}
