package entities

// TypeRef is one type slot of a creature.
type TypeRef struct {
	Slot int    `json:"slot"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Stat is a named base stat in the 0-255 range.
type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// MaxStat is the upper bound of a base stat, used to scale stat bars.
const MaxStat = 255

// Creature is the upstream entity record.
type Creature struct {
	ID     int       `json:"id"`
	Name   string    `json:"name"`
	Types  []TypeRef `json:"types"`
	Stats  []Stat    `json:"stats"`
	Height int       `json:"height"`
	Weight int       `json:"weight"`
}

// TypeNames returns the creature's type tags in slot order.
func (c *Creature) TypeNames() []string {
	names := make([]string, len(c.Types))
	for i, t := range c.Types {
		names[i] = t.Name
	}
	return names
}

// FlavorText is one localized description entry.
type FlavorText struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Genus is one localized category label ("Seed Pokémon").
type Genus struct {
	Genus    string `json:"genus"`
	Language string `json:"language"`
}

// Species is the supplementary metadata for an entity.
type Species struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	FlavorTexts       []FlavorText `json:"flavor_texts"`
	Genera            []Genus      `json:"genera"`
	EvolutionChainURL string       `json:"evolution_chain_url"`
}

// TypeRelations holds the types that deal double damage to a type.
type TypeRelations struct {
	Name             string   `json:"name"`
	DoubleDamageFrom []string `json:"double_damage_from"`
}

// ChainLink is one node of an upstream evolution chain.
type ChainLink struct {
	Species   Resource    `json:"species"`
	Trigger   string      `json:"trigger,omitempty"`
	EvolvesTo []ChainLink `json:"evolves_to,omitempty"`
}
