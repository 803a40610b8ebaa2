package services

import (
	"fmt"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/mocks"
)

const testBaseURL = "https://example.test/api/v2"

func speciesRef(id int, name string) entities.Resource {
	return entities.Resource{Name: name, URL: fmt.Sprintf("%s/pokemon-species/%d/", testBaseURL, id)}
}

func creatureURL(id int) string {
	return fmt.Sprintf("%s/pokemon/%d/", testBaseURL, id)
}

func typeURL(name string) string {
	return fmt.Sprintf("%s/type/%s/", testBaseURL, name)
}

func chainURL(id int) string {
	return fmt.Sprintf("%s/evolution-chain/%d/", testBaseURL, id)
}

// linearChain builds bulbasaur -> ivysaur -> venusaur.
func linearChain() *entities.ChainLink {
	return &entities.ChainLink{
		Species: speciesRef(1, "bulbasaur"),
		EvolvesTo: []entities.ChainLink{{
			Species: speciesRef(2, "ivysaur"),
			Trigger: "level-up",
			EvolvesTo: []entities.ChainLink{{
				Species: speciesRef(3, "venusaur"),
				Trigger: "level-up",
			}},
		}},
	}
}

// branchingChain builds eevee with three alternate successors.
func branchingChain() *entities.ChainLink {
	return &entities.ChainLink{
		Species: speciesRef(133, "eevee"),
		EvolvesTo: []entities.ChainLink{
			{Species: speciesRef(134, "vaporeon"), Trigger: "use-item"},
			{Species: speciesRef(135, "jolteon"), Trigger: "use-item"},
			{Species: speciesRef(136, "flareon"), Trigger: "use-item"},
		},
	}
}

func creature(id int, name string, types ...string) *entities.Creature {
	refs := make([]entities.TypeRef, len(types))
	for i, t := range types {
		refs[i] = entities.TypeRef{Slot: i + 1, Name: t, URL: typeURL(t)}
	}
	return &entities.Creature{
		ID:    id,
		Name:  name,
		Types: refs,
		Stats: []entities.Stat{
			{Name: "hp", Base: 45},
			{Name: "attack", Base: 49},
			{Name: "special-attack", Base: 65},
		},
		Height: 7,
		Weight: 69,
	}
}

// newFixtureAPI returns a mock upstream holding a small catalog:
// 1 bulbasaur, 2 ivysaur, 3 venusaur (grass/poison), 4 charmander (fire),
// 5 pikachu (electric), with type relations for every type used.
func newFixtureAPI() *mocks.CatalogAPI {
	api := mocks.NewCatalogAPI()

	roster := []*entities.Creature{
		creature(1, "bulbasaur", "grass", "poison"),
		creature(2, "ivysaur", "grass", "poison"),
		creature(3, "venusaur", "grass", "poison"),
		creature(4, "charmander", "fire"),
		creature(5, "pikachu", "electric"),
	}
	for _, c := range roster {
		api.Resources = append(api.Resources, entities.Resource{Name: c.Name, URL: creatureURL(c.ID)})
		api.Creatures[creatureURL(c.ID)] = c
		api.Creatures[fmt.Sprint(c.ID)] = c
		api.Species[fmt.Sprint(c.ID)] = &entities.Species{
			ID:   c.ID,
			Name: c.Name,
			FlavorTexts: []entities.FlavorText{
				{Text: "A strange seed was\fplanted on its back.", Language: "en"},
				{Text: "Una rara semilla le\fue plantada.", Language: "es"},
			},
			Genera:            []entities.Genus{{Genus: "Pokémon Semilla", Language: "es"}},
			EvolutionChainURL: chainURL(1),
		}
	}
	api.Species["4"].EvolutionChainURL = ""
	api.Species["5"].FlavorTexts = nil

	api.Chains[chainURL(1)] = linearChain()

	api.Relations[typeURL("grass")] = &entities.TypeRelations{
		Name:             "grass",
		DoubleDamageFrom: []string{"flying", "poison", "bug", "fire", "ice"},
	}
	api.Relations[typeURL("poison")] = &entities.TypeRelations{
		Name:             "poison",
		DoubleDamageFrom: []string{"ground", "psychic"},
	}
	api.Relations[typeURL("fire")] = &entities.TypeRelations{
		Name:             "fire",
		DoubleDamageFrom: []string{"ground", "rock", "water"},
	}
	api.Relations[typeURL("electric")] = &entities.TypeRelations{
		Name:             "electric",
		DoubleDamageFrom: []string{"ground"},
	}

	api.Types = []string{"normal", "fire", "water", "grass", "electric", "poison"}
	return api
}
