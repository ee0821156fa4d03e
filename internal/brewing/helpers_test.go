package brewing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/Alchemy_Go/internal/catalog"
	"github.com/osse101/Alchemy_Go/internal/catalog/catalogtest"
	"github.com/osse101/Alchemy_Go/internal/domain"
)

func newTestCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalogtest.Effects(), catalogtest.Ingredients())
	require.NoError(t, err)
	return c
}

// newCatalogWith builds the fixture catalog after applying mutate to its ingredients
func newCatalogWith(t testing.TB, mutate func(ings []domain.Ingredient)) *catalog.Catalog {
	t.Helper()
	ings := catalogtest.Ingredients()
	mutate(ings)
	c, err := catalog.New(catalogtest.Effects(), ings)
	require.NoError(t, err)
	return c
}

func setSlot(ings []domain.Ingredient, ingredient, effect string, power, value float64) {
	for i := range ings {
		if ings[i].Name != ingredient {
			continue
		}
		for j := range ings[i].Effects {
			if ings[i].Effects[j].Name == effect {
				ings[i].Effects[j].Power = power
				ings[i].Effects[j].Value = value
			}
		}
	}
}

func mustIngredients(t testing.TB, c *catalog.Catalog, names ...string) []*domain.Ingredient {
	t.Helper()
	ings, err := ResolveIngredients(c, names)
	require.NoError(t, err)
	return ings
}

func keys(potions []domain.Potion) []string {
	out := make([]string, len(potions))
	for i := range potions {
		out[i] = potions[i].Key()
	}
	return out
}

func valuesByKey(potions []domain.Potion) map[string]int {
	out := make(map[string]int, len(potions))
	for i := range potions {
		out[potions[i].Key()] = potions[i].Value
	}
	return out
}
