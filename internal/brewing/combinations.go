package brewing

import (
	"iter"

	"github.com/osse101/Alchemy_Go/internal/domain"
)

// Combinations yields every 2-subset of ings followed by every 3-subset, in
// lexicographic index order. Each yielded slice is freshly allocated.
func Combinations(ings []*domain.Ingredient) iter.Seq[[]*domain.Ingredient] {
	return func(yield func([]*domain.Ingredient) bool) {
		n := len(ings)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !yield([]*domain.Ingredient{ings[i], ings[j]}) {
					return
				}
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				for k := j + 1; k < n; k++ {
					if !yield([]*domain.Ingredient{ings[i], ings[j], ings[k]}) {
						return
					}
				}
			}
		}
	}
}

// CombinationCount returns C(n,2) + C(n,3)
func CombinationCount(n int) int {
	if n < domain.MinCombinationSize {
		return 0
	}
	pairs := n * (n - 1) / 2
	triples := n * (n - 1) * (n - 2) / 6
	return pairs + triples
}
