package pokeapi

import "github.com/ersonp/dex-core/internal/domain/entities"

// Wire shapes of the upstream JSON documents. Only the fields the catalog
// reads are declared.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (r namedResource) toEntity() entities.Resource {
	return entities.Resource{Name: r.Name, URL: r.URL}
}

type namedPage struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}

func (p namedPage) resources() []entities.Resource {
	out := make([]entities.Resource, len(p.Results))
	for i, r := range p.Results {
		out[i] = r.toEntity()
	}
	return out
}

type creatureBody struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
}

func (b creatureBody) toEntity() *entities.Creature {
	c := &entities.Creature{
		ID:     b.ID,
		Name:   b.Name,
		Height: b.Height,
		Weight: b.Weight,
		Types:  make([]entities.TypeRef, len(b.Types)),
		Stats:  make([]entities.Stat, len(b.Stats)),
	}
	for i, t := range b.Types {
		c.Types[i] = entities.TypeRef{Slot: t.Slot, Name: t.Type.Name, URL: t.Type.URL}
	}
	for i, s := range b.Stats {
		c.Stats[i] = entities.Stat{Name: s.Stat.Name, Base: s.BaseStat}
	}
	return c
}

type speciesBody struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   namedResource `json:"language"`
	} `json:"flavor_text_entries"`
	Genera []struct {
		Genus    string        `json:"genus"`
		Language namedResource `json:"language"`
	} `json:"genera"`
	EvolutionChain *struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

func (b speciesBody) toEntity() *entities.Species {
	s := &entities.Species{
		ID:          b.ID,
		Name:        b.Name,
		FlavorTexts: make([]entities.FlavorText, len(b.FlavorTextEntries)),
		Genera:      make([]entities.Genus, len(b.Genera)),
	}
	for i, f := range b.FlavorTextEntries {
		s.FlavorTexts[i] = entities.FlavorText{Text: f.FlavorText, Language: f.Language.Name}
	}
	for i, g := range b.Genera {
		s.Genera[i] = entities.Genus{Genus: g.Genus, Language: g.Language.Name}
	}
	if b.EvolutionChain != nil {
		s.EvolutionChainURL = b.EvolutionChain.URL
	}
	return s
}

type typeBody struct {
	Name            string `json:"name"`
	DamageRelations struct {
		DoubleDamageFrom []namedResource `json:"double_damage_from"`
	} `json:"damage_relations"`
}

func (b typeBody) toEntity() *entities.TypeRelations {
	r := &entities.TypeRelations{
		Name:             b.Name,
		DoubleDamageFrom: make([]string, len(b.DamageRelations.DoubleDamageFrom)),
	}
	for i, t := range b.DamageRelations.DoubleDamageFrom {
		r.DoubleDamageFrom[i] = t.Name
	}
	return r
}

type evolutionBody struct {
	ID    int       `json:"id"`
	Chain chainBody `json:"chain"`
}

type chainBody struct {
	Species          namedResource `json:"species"`
	EvolutionDetails []struct {
		Trigger namedResource `json:"trigger"`
	} `json:"evolution_details"`
	EvolvesTo []chainBody `json:"evolves_to"`
}

// toEntity keeps every branch. Only the first detail's trigger is carried.
func (b chainBody) toEntity() entities.ChainLink {
	link := entities.ChainLink{Species: b.Species.toEntity()}
	if len(b.EvolutionDetails) > 0 {
		link.Trigger = b.EvolutionDetails[0].Trigger.Name
	}
	if len(b.EvolvesTo) > 0 {
		link.EvolvesTo = make([]entities.ChainLink, len(b.EvolvesTo))
		for i, next := range b.EvolvesTo {
			link.EvolvesTo[i] = next.toEntity()
		}
	}
	return link
}
