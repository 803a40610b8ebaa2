package handlers

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/mocks"
	"github.com/ersonp/dex-core/internal/domain/ports"
	"github.com/ersonp/dex-core/internal/domain/services"
)

func testCreatureURL(id int) string {
	return fmt.Sprintf("https://example.test/api/v2/pokemon/%d/", id)
}

// newTestAPI returns a three entry catalog: bulbasaur, charmander, squirtle.
func newTestAPI() *mocks.CatalogAPI {
	api := mocks.NewCatalogAPI()
	roster := []struct {
		name string
		typ  string
	}{
		{"bulbasaur", "grass"},
		{"charmander", "fire"},
		{"squirtle", "water"},
	}
	for i, r := range roster {
		id := i + 1
		c := &entities.Creature{
			ID:    id,
			Name:  r.name,
			Types: []entities.TypeRef{{Slot: 1, Name: r.typ}},
			Stats: []entities.Stat{{Name: "hp", Base: 40 + id}},
		}
		api.Resources = append(api.Resources, entities.Resource{Name: r.name, URL: testCreatureURL(id)})
		api.Creatures[testCreatureURL(id)] = c
		api.Creatures[fmt.Sprint(id)] = c
		api.Species[fmt.Sprint(id)] = &entities.Species{
			ID:          id,
			Name:        r.name,
			FlavorTexts: []entities.FlavorText{{Text: "Texto de " + r.name, Language: "es"}},
		}
	}
	api.Relations["grass"] = &entities.TypeRelations{Name: "grass", DoubleDamageFrom: []string{"fire", "ice"}}
	api.Relations["fire"] = &entities.TypeRelations{Name: "fire", DoubleDamageFrom: []string{"water"}}
	api.Relations["water"] = &entities.TypeRelations{Name: "water", DoubleDamageFrom: []string{"grass", "electric"}}
	api.Types = []string{"fire", "grass", "water"}
	return api
}

func newTestListingHandler(api *mocks.CatalogAPI, assets *mocks.AssetFetcher, cache ports.Cache) *ListingHandler {
	catalog := services.NewCatalogService(api, assets, cache, zap.NewNop(), services.CatalogOptions{Limit: 3})
	return NewListingHandler(catalog)
}

func newTestDetailHandler(api *mocks.CatalogAPI) *DetailHandler {
	detail := services.NewDetailService(api, zap.NewNop(), services.DetailOptions{Limit: 3})
	return NewDetailHandler(detail)
}
