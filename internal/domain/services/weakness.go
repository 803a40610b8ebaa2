package services

import (
	"sort"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// AggregateWeaknesses merges the double-damage-from lists of an entity's
// types. An opposing type that hits one of the entity's types is a double
// weakness; one that hits two or more is quadruple.
//
// Entries are ordered by count, highest first. Equal counts keep the order in
// which the opposing type was first seen, walking relations in slot order.
func AggregateWeaknesses(relations []entities.TypeRelations) []entities.WeaknessEntry {
	counts := make(map[string]int)
	order := make([]string, 0, 8)

	for _, rel := range relations {
		for _, opposing := range rel.DoubleDamageFrom {
			if _, seen := counts[opposing]; !seen {
				order = append(order, opposing)
			}
			counts[opposing]++
		}
	}

	result := make([]entities.WeaknessEntry, 0, len(order))
	for _, typeName := range order {
		result = append(result, entities.WeaknessEntry{
			Type:       typeName,
			Multiplier: classifyMultiplier(counts[typeName]),
			Count:      counts[typeName],
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}

func classifyMultiplier(count int) entities.Multiplier {
	if count >= 2 {
		return entities.MultiplierQuadruple
	}
	return entities.MultiplierDouble
}
