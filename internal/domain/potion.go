package domain

import (
	"sort"
	"strings"
)

// ActiveEffect is an effect shared by two or more ingredients of a combination.
// Power and Value are the products of the contributing slots' multipliers.
type ActiveEffect struct {
	Name        string  `json:"name"`
	Power       float64 `json:"power"`
	Value       float64 `json:"value"`
	Description string  `json:"description,omitempty"`
}

// Potion is the result of brewing a combination of two or three ingredients.
// Potions are identified by their effect profile, not by their ingredients.
type Potion struct {
	Ingredients []string       `json:"ingredients"`
	Effects     []ActiveEffect `json:"effects"`
	Value       int            `json:"value"`
}

// Profile returns the sorted active effect names
func (p *Potion) Profile() []string {
	names := make([]string, len(p.Effects))
	for i, effect := range p.Effects {
		names[i] = effect.Name
	}
	sort.Strings(names)
	return names
}

// Key identifies the potion's effect profile. Two potions with the same key
// are the same potion regardless of the ingredients used.
func (p *Potion) Key() string {
	return strings.Join(p.Profile(), "|")
}

// Name is the display name, e.g. "Potion of Fortify Health and Restore Health"
func (p *Potion) Name() string {
	return PotionNamePrefix + strings.Join(p.Profile(), PotionNameJoiner)
}

// Equal compares effect profiles
func (p *Potion) Equal(other *Potion) bool {
	if other == nil {
		return false
	}
	return p.Key() == other.Key()
}

// HasEffects reports whether the potion's profile is a superset of names
func (p *Potion) HasEffects(names []string) bool {
	have := make(map[string]struct{}, len(p.Effects))
	for _, effect := range p.Effects {
		have[effect.Name] = struct{}{}
	}
	for _, name := range names {
		if _, ok := have[name]; !ok {
			return false
		}
	}
	return true
}

func (p *Potion) String() string {
	return p.Name()
}
