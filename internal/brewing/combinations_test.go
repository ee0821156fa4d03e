package brewing

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Alchemy_Go/internal/domain"
)

func namedIngredients(names ...string) []*domain.Ingredient {
	ings := make([]*domain.Ingredient, len(names))
	for i, n := range names {
		ings[i] = &domain.Ingredient{Name: n}
	}
	return ings
}

func comboNames(combos [][]*domain.Ingredient) []string {
	out := make([]string, len(combos))
	for i, combo := range combos {
		s := ""
		for _, ing := range combo {
			s += ing.Name
		}
		out[i] = s
	}
	return out
}

func TestCombinations(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"empty", nil, []string{}},
		{"single", []string{"A"}, []string{}},
		{"pair", []string{"A", "B"}, []string{"AB"}},
		{"three", []string{"A", "B", "C"}, []string{"AB", "AC", "BC", "ABC"}},
		{"four", []string{"A", "B", "C", "D"}, []string{
			"AB", "AC", "AD", "BC", "BD", "CD",
			"ABC", "ABD", "ACD", "BCD",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combos := slices.Collect(Combinations(namedIngredients(tt.input...)))
			got := comboNames(combos)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, CombinationCount(len(tt.input)), len(got))
		})
	}
}

func TestCombinations_EarlyStop(t *testing.T) {
	seen := 0
	for range Combinations(namedIngredients("A", "B", "C", "D", "E")) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestCombinations_FreshSlices(t *testing.T) {
	combos := slices.Collect(Combinations(namedIngredients("A", "B", "C")))
	combos[0][0] = &domain.Ingredient{Name: "Z"}
	assert.Equal(t, "A", combos[1][0].Name)
}

func TestCombinationCount(t *testing.T) {
	assert.Equal(t, 0, CombinationCount(0))
	assert.Equal(t, 0, CombinationCount(1))
	assert.Equal(t, 1, CombinationCount(2))
	assert.Equal(t, 4, CombinationCount(3))
	assert.Equal(t, 20, CombinationCount(5))
	assert.Equal(t, 45+120, CombinationCount(10))
}
