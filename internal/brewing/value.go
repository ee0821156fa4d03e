package brewing

import (
	"fmt"
	"math"
	"sort"

	"github.com/osse101/Alchemy_Go/internal/domain"
)

// EffectLookup finds effects by exact name
type EffectLookup interface {
	Effect(name string) (*domain.Effect, bool)
}

// Value scores a set of active effects: floor of the sum over effects of
// BaseValue times the combined value multiplier.
func Value(active map[string]domain.ActiveEffect, effects EffectLookup) (int, error) {
	names := make([]string, 0, len(active))
	for name := range active {
		names = append(names, name)
	}
	// fixed summation order keeps the result deterministic
	sort.Strings(names)

	total := 0.0
	for _, name := range names {
		effect, ok := effects.Effect(name)
		if !ok {
			return 0, fmt.Errorf("%w: '%s'", domain.ErrUnknownEffect, name)
		}
		total += float64(effect.BaseValue()) * active[name].Value
	}
	return int(math.Floor(total)), nil
}
