// Package brewing finds the potions a set of ingredients can make.
package brewing

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/Alchemy_Go/internal/domain"
)

// Catalog is the read-only view of the ingredient and effect catalogs the
// engine needs. *catalog.Catalog satisfies it.
type Catalog interface {
	EffectLookup
	ResolveIngredient(name string) (*domain.Ingredient, error)
	ResolveEffect(name string) (*domain.Effect, error)
	IngredientsWithAnyEffect(effectNames []string) []*domain.Ingredient
}

// Options tune a brew
type Options struct {
	// Limit caps the number of potions returned; zero means no cap
	Limit int
	// MaxCandidates caps the ingredients a target-effect search may combine;
	// zero means no cap
	MaxCandidates int
	SortBy        SortKey
}

// stats describes the work done by one brew
type stats struct {
	candidates   int
	combinations int
}

// Brew returns the ranked potions that can be made from the named ingredients.
// Any unknown name fails the whole call with domain.ErrUnknownIngredient.
// Repeated names are brewed once.
func Brew(cat Catalog, names []string, opts Options) ([]domain.Potion, error) {
	potions, _, err := brew(context.Background(), cat, names, opts)
	return potions, err
}

// BrewByTargetEffects returns the ranked potions carrying every target effect.
// Only ingredients carrying at least one target effect are combined.
func BrewByTargetEffects(cat Catalog, targets []string, opts Options) ([]domain.Potion, error) {
	potions, _, err := brewByTargetEffects(context.Background(), cat, targets, opts)
	return potions, err
}

func brew(ctx context.Context, cat Catalog, names []string, opts Options) ([]domain.Potion, stats, error) {
	ings, err := ResolveIngredients(cat, names)
	if err != nil {
		return nil, stats{}, err
	}

	potions, tested, err := brewIngredients(ctx, ings, cat)
	if err != nil {
		return nil, stats{}, err
	}

	ranked, err := Rank(potions, opts.SortBy, opts.Limit)
	return ranked, stats{candidates: len(ings), combinations: tested}, err
}

func brewByTargetEffects(ctx context.Context, cat Catalog, targets []string, opts Options) ([]domain.Potion, stats, error) {
	canonical, err := ResolveEffects(cat, targets)
	if err != nil {
		return nil, stats{}, err
	}

	candidates := cat.IngredientsWithAnyEffect(canonical)
	if opts.MaxCandidates > 0 && len(candidates) > opts.MaxCandidates {
		return nil, stats{}, fmt.Errorf("%w: %d ingredients carry the requested effects (max %d)",
			domain.ErrTooManyIngredients, len(candidates), opts.MaxCandidates)
	}

	potions, tested, err := brewIngredients(ctx, candidates, cat)
	if err != nil {
		return nil, stats{}, err
	}

	matching := potions[:0]
	for _, p := range potions {
		if p.HasEffects(canonical) {
			matching = append(matching, p)
		}
	}

	ranked, err := Rank(matching, opts.SortBy, opts.Limit)
	return ranked, stats{candidates: len(candidates), combinations: tested}, err
}

// ResolveIngredients maps names to catalog ingredients, dropping repeats and
// keeping first-seen order
func ResolveIngredients(cat Catalog, names []string) ([]*domain.Ingredient, error) {
	ings := make([]*domain.Ingredient, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		ing, err := cat.ResolveIngredient(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[ing.Name]; dup {
			continue
		}
		seen[ing.Name] = struct{}{}
		ings = append(ings, ing)
	}
	return ings, nil
}

// ResolveEffects maps target names to canonical effect names, sorted and
// deduplicated. At least one target is required.
func ResolveEffects(cat Catalog, targets []string) ([]string, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no target effects", domain.ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(targets))
	names := make([]string, 0, len(targets))
	for _, target := range targets {
		effect, err := cat.ResolveEffect(target)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[effect.Name]; dup {
			continue
		}
		seen[effect.Name] = struct{}{}
		names = append(names, effect.Name)
	}
	sort.Strings(names)
	return names, nil
}

// BrewIngredients scores every combination of ings that produces a potion.
// The result is unranked and may contain several potions per effect profile.
func BrewIngredients(ings []*domain.Ingredient, effects EffectLookup) ([]domain.Potion, error) {
	potions, _, err := brewIngredients(context.Background(), ings, effects)
	return potions, err
}

func brewIngredients(ctx context.Context, ings []*domain.Ingredient, effects EffectLookup) ([]domain.Potion, int, error) {
	var potions []domain.Potion
	tested := 0

	for combo := range Combinations(ings) {
		tested++
		if tested%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, tested, err
			}
		}

		active, err := Combine(combo)
		if err != nil {
			return nil, tested, err
		}
		if len(active) == 0 {
			continue
		}

		potion, err := newPotion(combo, active, effects)
		if err != nil {
			return nil, tested, err
		}
		potions = append(potions, potion)
	}
	return potions, tested, nil
}

func newPotion(combo []*domain.Ingredient, active map[string]domain.ActiveEffect, effects EffectLookup) (domain.Potion, error) {
	value, err := Value(active, effects)
	if err != nil {
		return domain.Potion{}, err
	}

	names := make([]string, len(combo))
	for i, ing := range combo {
		names[i] = ing.Name
	}

	list := make([]domain.ActiveEffect, 0, len(active))
	for _, ae := range active {
		if effect, ok := effects.Effect(ae.Name); ok {
			ae.Description = effect.Describe(ae.Power)
		}
		list = append(list, ae)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	return domain.Potion{Ingredients: names, Effects: list, Value: value}, nil
}
