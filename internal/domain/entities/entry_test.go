package entities

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		expected string
	}{
		{name: "single digit", id: 7, expected: "#007"},
		{name: "two digits", id: 25, expected: "#025"},
		{name: "three digits", id: 151, expected: "#151"},
		{name: "beyond padding", id: 1010, expected: "#1010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.id))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Pikachu", DisplayName("pikachu"))
	assert.Equal(t, "Mr-mime", DisplayName("mr-mime"))
	assert.Equal(t, "", DisplayName(""))
	assert.Equal(t, "Élan", DisplayName("élan"))
	assert.Equal(t, "Ñandú", DisplayName("ñandú"))
	assert.True(t, utf8.ValidString(DisplayName("ñandú")))
}

func TestTypeDisplayName(t *testing.T) {
	assert.Equal(t, "Fuego", TypeDisplayName("fire"))
	assert.Equal(t, "Eléctrico", TypeDisplayName("electric"))
	assert.Equal(t, "Shadow", TypeDisplayName("shadow"), "unknown tags are capitalized")
}

func TestCatalogEntry_HasType(t *testing.T) {
	entry := CatalogEntry{ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}}

	assert.True(t, entry.HasType("grass"))
	assert.True(t, entry.HasType("poison"))
	assert.False(t, entry.HasType("fire"))
}

func TestMultiplier_Label(t *testing.T) {
	assert.Equal(t, "2x", MultiplierDouble.Label())
	assert.Equal(t, "4x", MultiplierQuadruple.Label())
}

func TestCreature_TypeNames(t *testing.T) {
	c := &Creature{Types: []TypeRef{{Slot: 1, Name: "water"}, {Slot: 2, Name: "flying"}}}
	assert.Equal(t, []string{"water", "flying"}, c.TypeNames())
}
