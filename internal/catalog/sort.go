package catalog

import (
	"fmt"
	"sort"

	"github.com/osse101/Alchemy_Go/internal/domain"
)

// SortEffects orders effects in place by name, cost, value (descending) or
// school. An empty key keeps name order.
func SortEffects(effects []*domain.Effect, key string) error {
	var less func(a, b *domain.Effect) bool
	switch key {
	case "", SortByName:
		less = func(a, b *domain.Effect) bool { return a.Name < b.Name }
	case SortByCost:
		less = func(a, b *domain.Effect) bool { return a.Cost > b.Cost }
	case SortByValue:
		less = func(a, b *domain.Effect) bool { return a.BaseValue() > b.BaseValue() }
	case SortBySchool:
		less = func(a, b *domain.Effect) bool { return a.School < b.School }
	default:
		return fmt.Errorf("%w: unknown effect sort key '%s'", domain.ErrInvalidInput, key)
	}

	sort.SliceStable(effects, func(i, j int) bool {
		return less(effects[i], effects[j])
	})
	return nil
}

// SortIngredients orders ingredients in place by name, gold value (descending)
// or weight. An empty key keeps name order.
func SortIngredients(ingredients []*domain.Ingredient, key string) error {
	var less func(a, b *domain.Ingredient) bool
	switch key {
	case "", SortByName:
		less = func(a, b *domain.Ingredient) bool { return a.Name < b.Name }
	case SortByValue:
		less = func(a, b *domain.Ingredient) bool { return a.GoldValue > b.GoldValue }
	case SortByWeight:
		less = func(a, b *domain.Ingredient) bool { return a.Weight < b.Weight }
	default:
		return fmt.Errorf("%w: unknown ingredient sort key '%s'", domain.ErrInvalidInput, key)
	}

	sort.SliceStable(ingredients, func(i, j int) bool {
		return less(ingredients[i], ingredients[j])
	})
	return nil
}
