package entities

// Multiplier classifies how hard a weakness hits.
type Multiplier string

const (
	MultiplierDouble    Multiplier = "double"
	MultiplierQuadruple Multiplier = "quadruple"
)

// Label returns the short form shown next to a weakness.
func (m Multiplier) Label() string {
	if m == MultiplierQuadruple {
		return "4x"
	}
	return "2x"
}

// WeaknessEntry is an opposing type together with its multiplier.
type WeaknessEntry struct {
	Type       string     `json:"type"`
	Multiplier Multiplier `json:"multiplier"`
	Count      int        `json:"count"`
}

// DefaultTrigger is used when a chain link carries no trigger.
const DefaultTrigger = "level-up"

// EvolutionNode is one stage of a flattened evolution chain.
type EvolutionNode struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Trigger string `json:"trigger"`
}

// DetailRecord is everything the detail view renders for one entity.
type DetailRecord struct {
	CatalogEntry
	Stats       []Stat          `json:"stats"`
	Description string          `json:"description"`
	Genus       string          `json:"genus,omitempty"`
	Height      int             `json:"height"`
	Weight      int             `json:"weight"`
	Weaknesses  []WeaknessEntry `json:"weaknesses"`
	Evolutions  []EvolutionNode `json:"evolutions"`
}
