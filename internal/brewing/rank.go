package brewing

import (
	"fmt"
	"sort"

	"github.com/osse101/Alchemy_Go/internal/domain"
)

// Rank deduplicates potions by effect profile and sorts them. For each profile
// the highest-value potion is kept; on equal value the first one seen wins.
// A positive limit truncates the sorted result.
func Rank(potions []domain.Potion, sortBy SortKey, limit int) ([]domain.Potion, error) {
	best := make(map[string]int, len(potions))
	keys := make([]string, 0, len(potions))
	ranked := make([]domain.Potion, 0, len(potions))

	for _, p := range potions {
		key := p.Key()
		idx, seen := best[key]
		if !seen {
			best[key] = len(ranked)
			keys = append(keys, key)
			ranked = append(ranked, p)
			continue
		}
		if p.Value > ranked[idx].Value {
			ranked[idx] = p
		}
	}

	var less func(i, j int) bool
	switch sortBy {
	case "", SortByValue:
		less = func(i, j int) bool {
			if ranked[i].Value != ranked[j].Value {
				return ranked[i].Value > ranked[j].Value
			}
			return keys[i] < keys[j]
		}
	case SortByName:
		less = func(i, j int) bool { return keys[i] < keys[j] }
	default:
		return nil, fmt.Errorf("%w: unknown potion sort key '%s'", domain.ErrInvalidInput, sortBy)
	}

	sort.Sort(&potionSorter{potions: ranked, keys: keys, less: less})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// potionSorter keeps potions and their precomputed keys aligned while sorting
type potionSorter struct {
	potions []domain.Potion
	keys    []string
	less    func(i, j int) bool
}

func (s *potionSorter) Len() int           { return len(s.potions) }
func (s *potionSorter) Less(i, j int) bool { return s.less(i, j) }
func (s *potionSorter) Swap(i, j int) {
	s.potions[i], s.potions[j] = s.potions[j], s.potions[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

// ParseSortKey validates a user-supplied sort key
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortByValue, nil
	case SortByValue, SortByName:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("%w: unknown potion sort key '%s'", domain.ErrInvalidInput, s)
	}
}
