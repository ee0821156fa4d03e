package brewing

import (
	"fmt"
	"sort"

	"github.com/osse101/Alchemy_Go/internal/domain"
)

// Combine returns the effects shared by at least two of the ingredients, keyed
// by name. Each active effect's power and value are the products of the
// contributing slots' multipliers, so an effect carried by all three
// ingredients multiplies all three. An empty map means no potion.
func Combine(ings []*domain.Ingredient) (map[string]domain.ActiveEffect, error) {
	if len(ings) < domain.MinCombinationSize || len(ings) > domain.MaxCombinationSize {
		return nil, fmt.Errorf("%w: got %d ingredients", domain.ErrInvalidCombinationSize, len(ings))
	}

	// Multiply in name order so the float result does not depend on input order
	ordered := make([]*domain.Ingredient, len(ings))
	copy(ordered, ings)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	type group struct {
		count int
		power float64
		value float64
	}
	groups := make(map[string]*group, domain.MaxEffectSlots*len(ordered))

	for _, ing := range ordered {
		for _, slot := range ing.Effects {
			g, ok := groups[slot.Name]
			if !ok {
				groups[slot.Name] = &group{count: 1, power: slot.Power, value: slot.Value}
				continue
			}
			g.count++
			g.power *= slot.Power
			g.value *= slot.Value
		}
	}

	active := make(map[string]domain.ActiveEffect)
	for name, g := range groups {
		if g.count < 2 {
			continue
		}
		active[name] = domain.ActiveEffect{Name: name, Power: g.power, Value: g.value}
	}
	return active, nil
}
