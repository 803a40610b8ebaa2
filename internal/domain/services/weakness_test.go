package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

func TestAggregateWeaknesses_SingleType(t *testing.T) {
	relations := []entities.TypeRelations{
		{Name: "fire", DoubleDamageFrom: []string{"ground", "rock", "water"}},
	}

	result := AggregateWeaknesses(relations)

	require.Len(t, result, 3)
	seen := make(map[string]bool)
	for _, w := range result {
		assert.False(t, seen[w.Type], "duplicate weakness %s", w.Type)
		seen[w.Type] = true
		assert.Equal(t, entities.MultiplierDouble, w.Multiplier)
		assert.Equal(t, 1, w.Count)
	}
	// Equal counts keep upstream order.
	assert.Equal(t, "ground", result[0].Type)
	assert.Equal(t, "rock", result[1].Type)
	assert.Equal(t, "water", result[2].Type)
}

func TestAggregateWeaknesses_SharedWeaknessIsQuadruple(t *testing.T) {
	// fire/flying: rock hits both types.
	relations := []entities.TypeRelations{
		{Name: "fire", DoubleDamageFrom: []string{"ground", "rock", "water"}},
		{Name: "flying", DoubleDamageFrom: []string{"electric", "ice", "rock"}},
	}

	result := AggregateWeaknesses(relations)

	require.Len(t, result, 5)
	assert.Equal(t, entities.WeaknessEntry{Type: "rock", Multiplier: entities.MultiplierQuadruple, Count: 2}, result[0])

	rest := make([]string, 0, 4)
	for _, w := range result[1:] {
		assert.Equal(t, entities.MultiplierDouble, w.Multiplier)
		rest = append(rest, w.Type)
	}
	assert.Equal(t, []string{"ground", "water", "electric", "ice"}, rest)
}

func TestAggregateWeaknesses_CountAboveTwoStaysQuadruple(t *testing.T) {
	relations := []entities.TypeRelations{
		{Name: "a", DoubleDamageFrom: []string{"ice"}},
		{Name: "b", DoubleDamageFrom: []string{"ice"}},
		{Name: "c", DoubleDamageFrom: []string{"ice", "fire"}},
	}

	result := AggregateWeaknesses(relations)

	require.Len(t, result, 2)
	assert.Equal(t, "ice", result[0].Type)
	assert.Equal(t, 3, result[0].Count)
	assert.Equal(t, entities.MultiplierQuadruple, result[0].Multiplier)
	assert.Equal(t, entities.MultiplierDouble, result[1].Multiplier)
}

func TestAggregateWeaknesses_Empty(t *testing.T) {
	assert.Empty(t, AggregateWeaknesses(nil))
	assert.Empty(t, AggregateWeaknesses([]entities.TypeRelations{{Name: "normal"}}))
}

func TestAggregateWeaknesses_OnlyTwoMultipliers(t *testing.T) {
	relations := []entities.TypeRelations{
		{Name: "grass", DoubleDamageFrom: []string{"flying", "poison", "bug", "fire", "ice"}},
		{Name: "ice", DoubleDamageFrom: []string{"fire", "fighting", "rock", "steel"}},
	}

	for _, w := range AggregateWeaknesses(relations) {
		assert.Contains(t, []entities.Multiplier{entities.MultiplierDouble, entities.MultiplierQuadruple}, w.Multiplier)
		if w.Count >= 2 {
			assert.Equal(t, entities.MultiplierQuadruple, w.Multiplier)
		}
	}
}
