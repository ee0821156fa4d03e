// Package catalog holds the immutable effect and ingredient catalogs the
// brewing engine reads from.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/osse101/Alchemy_Go/internal/domain"
)

// Sentinel errors for catalog construction
var (
	ErrInvalidConfig = errors.New("invalid catalog")
	ErrDuplicateName = errors.New("duplicate name")
)

// Catalog is an immutable snapshot of effects and ingredients. It is safe for
// concurrent use; returned records must not be modified.
type Catalog struct {
	version string

	effects     map[string]*domain.Effect
	ingredients map[string]*domain.Ingredient

	// sorted canonical names
	effectNames     []string
	ingredientNames []string

	// case-folded name -> canonical name
	foldedEffects     map[string]string
	foldedIngredients map[string]string
}

// New validates the records and builds a snapshot. Every ingredient slot must
// reference a known effect; a missing one fails with domain.ErrUnknownEffect.
// Slot multipliers left at zero default to 1.0.
func New(effects []domain.Effect, ingredients []domain.Ingredient) (*Catalog, error) {
	c := &Catalog{
		effects:           make(map[string]*domain.Effect, len(effects)),
		ingredients:       make(map[string]*domain.Ingredient, len(ingredients)),
		foldedEffects:     make(map[string]string, len(effects)),
		foldedIngredients: make(map[string]string, len(ingredients)),
	}

	for i := range effects {
		effect := effects[i]
		if err := validateEffect(i, &effect); err != nil {
			return nil, err
		}
		if _, exists := c.effects[effect.Name]; exists {
			return nil, fmt.Errorf("%w: effect '%s'", ErrDuplicateName, effect.Name)
		}
		c.effects[effect.Name] = &effect
		c.effectNames = append(c.effectNames, effect.Name)
		c.foldedEffects[fold(effect.Name)] = effect.Name
	}

	for i := range ingredients {
		ingredient := copyIngredient(ingredients[i])
		if err := c.validateIngredient(i, &ingredient); err != nil {
			return nil, err
		}
		if _, exists := c.ingredients[ingredient.Name]; exists {
			return nil, fmt.Errorf("%w: ingredient '%s'", ErrDuplicateName, ingredient.Name)
		}
		c.ingredients[ingredient.Name] = &ingredient
		c.ingredientNames = append(c.ingredientNames, ingredient.Name)
		c.foldedIngredients[fold(ingredient.Name)] = ingredient.Name
	}

	sort.Strings(c.effectNames)
	sort.Strings(c.ingredientNames)

	version, err := c.computeVersion()
	if err != nil {
		return nil, err
	}
	c.version = version

	return c, nil
}

func validateEffect(index int, effect *domain.Effect) error {
	if strings.TrimSpace(effect.Name) == "" {
		return fmt.Errorf("%w: effect at index %d has empty name", ErrInvalidConfig, index)
	}
	if effect.Cost <= 0 {
		return fmt.Errorf("%w: effect '%s' has non-positive cost", ErrInvalidConfig, effect.Name)
	}
	if effect.Magnitude < 0 {
		return fmt.Errorf("%w: effect '%s' has negative mag", ErrInvalidConfig, effect.Name)
	}
	if effect.Duration < 0 {
		return fmt.Errorf("%w: effect '%s' has negative dur", ErrInvalidConfig, effect.Name)
	}
	return nil
}

func (c *Catalog) validateIngredient(index int, ingredient *domain.Ingredient) error {
	if strings.TrimSpace(ingredient.Name) == "" {
		return fmt.Errorf("%w: ingredient at index %d has empty name", ErrInvalidConfig, index)
	}
	if len(ingredient.Effects) > domain.MaxEffectSlots {
		return fmt.Errorf("%w: ingredient '%s' has %d effects (max %d)",
			ErrInvalidConfig, ingredient.Name, len(ingredient.Effects), domain.MaxEffectSlots)
	}

	seen := make(map[string]bool, len(ingredient.Effects))
	for j := range ingredient.Effects {
		slot := &ingredient.Effects[j]
		if _, ok := c.effects[slot.Name]; !ok {
			return fmt.Errorf("%w: ingredient '%s' effect[%d] references '%s'",
				domain.ErrUnknownEffect, ingredient.Name, j, slot.Name)
		}
		if seen[slot.Name] {
			return fmt.Errorf("%w: ingredient '%s' lists effect '%s' twice",
				ErrInvalidConfig, ingredient.Name, slot.Name)
		}
		seen[slot.Name] = true

		if slot.Power < 0 || slot.Value < 0 {
			return fmt.Errorf("%w: ingredient '%s' effect '%s' has a negative multiplier",
				ErrInvalidConfig, ingredient.Name, slot.Name)
		}
		if slot.Power == 0 {
			slot.Power = domain.DefaultMultiplier
		}
		if slot.Value == 0 {
			slot.Value = domain.DefaultMultiplier
		}
	}
	if ingredient.Weight < 0 || ingredient.GoldValue < 0 {
		return fmt.Errorf("%w: ingredient '%s' has negative weight or value", ErrInvalidConfig, ingredient.Name)
	}
	return nil
}

func copyIngredient(src domain.Ingredient) domain.Ingredient {
	dst := src
	dst.Effects = append([]domain.EffectSlot(nil), src.Effects...)
	return dst
}

// computeVersion hashes the canonical (name-sorted) content
func (c *Catalog) computeVersion() (string, error) {
	content := struct {
		Effects     []*domain.Effect     `json:"effects"`
		Ingredients []*domain.Ingredient `json:"ingredients"`
	}{
		Effects:     c.Effects(EffectFilter{}),
		Ingredients: c.Ingredients(IngredientFilter{}),
	}

	data, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("failed to hash catalog: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:VersionLength], nil
}

// Version identifies the snapshot's content
func (c *Catalog) Version() string {
	return c.version
}

// EffectCount returns the number of effects
func (c *Catalog) EffectCount() int {
	return len(c.effects)
}

// IngredientCount returns the number of ingredients
func (c *Catalog) IngredientCount() int {
	return len(c.ingredients)
}

// Effect looks up an effect by exact name
func (c *Catalog) Effect(name string) (*domain.Effect, bool) {
	effect, ok := c.effects[name]
	return effect, ok
}

// Ingredient looks up an ingredient by exact name
func (c *Catalog) Ingredient(name string) (*domain.Ingredient, bool) {
	ingredient, ok := c.ingredients[name]
	return ingredient, ok
}

// ResolveIngredient finds an ingredient by exact name, then case-insensitively.
// Unknown names fail with domain.ErrUnknownIngredient and list close matches.
func (c *Catalog) ResolveIngredient(name string) (*domain.Ingredient, error) {
	if ingredient, ok := c.ingredients[name]; ok {
		return ingredient, nil
	}
	if canonical, ok := c.foldedIngredients[fold(name)]; ok {
		return c.ingredients[canonical], nil
	}
	return nil, &UnknownNameError{
		Err:         domain.ErrUnknownIngredient,
		Name:        name,
		Suggestions: suggest(name, c.ingredientNames),
	}
}

// ResolveEffect finds an effect by exact name, then case-insensitively.
// Unknown names fail with domain.ErrEffectNotFound.
func (c *Catalog) ResolveEffect(name string) (*domain.Effect, error) {
	if effect, ok := c.effects[name]; ok {
		return effect, nil
	}
	if canonical, ok := c.foldedEffects[fold(name)]; ok {
		return c.effects[canonical], nil
	}
	return nil, &UnknownNameError{
		Err:         domain.ErrEffectNotFound,
		Name:        name,
		Suggestions: suggest(name, c.effectNames),
	}
}

// UnknownNameError reports a name missing from the catalog along with the
// closest known names.
type UnknownNameError struct {
	Err         error
	Name        string
	Suggestions []string
}

func (e *UnknownNameError) Error() string {
	msg := fmt.Sprintf("%s: %q", e.Err, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(quoteAll(e.Suggestions), ", "))
	}
	return msg
}

func (e *UnknownNameError) Unwrap() error {
	return e.Err
}

func quoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return quoted
}

// EffectFilter narrows an effect listing. Empty fields match everything.
type EffectFilter struct {
	School string
	Type   string
}

func (f EffectFilter) matches(effect *domain.Effect) bool {
	if f.School != "" && !strings.EqualFold(f.School, effect.School) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(f.Type, effect.Type) {
		return false
	}
	return true
}

// Effects lists effects matching the filter in name order
func (c *Catalog) Effects(filter EffectFilter) []*domain.Effect {
	result := make([]*domain.Effect, 0, len(c.effectNames))
	for _, name := range c.effectNames {
		effect := c.effects[name]
		if filter.matches(effect) {
			result = append(result, effect)
		}
	}
	return result
}

// IngredientFilter narrows an ingredient listing. Effects must all be carried
// by a matching ingredient; a nil Farmable matches both.
type IngredientFilter struct {
	Effects  []string
	Farmable *bool
}

func (f IngredientFilter) matches(ingredient *domain.Ingredient) bool {
	if f.Farmable != nil && ingredient.Farmable != *f.Farmable {
		return false
	}
	for _, effect := range f.Effects {
		if !ingredient.HasEffect(effect) {
			return false
		}
	}
	return true
}

// Ingredients lists ingredients matching the filter in name order
func (c *Catalog) Ingredients(filter IngredientFilter) []*domain.Ingredient {
	result := make([]*domain.Ingredient, 0, len(c.ingredientNames))
	for _, name := range c.ingredientNames {
		ingredient := c.ingredients[name]
		if filter.matches(ingredient) {
			result = append(result, ingredient)
		}
	}
	return result
}

// IngredientsWithAnyEffect lists, in name order, the ingredients carrying at
// least one of the named effects
func (c *Catalog) IngredientsWithAnyEffect(effectNames []string) []*domain.Ingredient {
	var result []*domain.Ingredient
	for _, name := range c.ingredientNames {
		ingredient := c.ingredients[name]
		for _, effect := range effectNames {
			if ingredient.HasEffect(effect) {
				result = append(result, ingredient)
				break
			}
		}
	}
	return result
}

// fold returns the case-folded form used for case-insensitive lookups.
// A Caser is stateful, so one is created per call.
func fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// suggest returns up to MaxSuggestions known names within edit distance of name
func suggest(name string, known []string) []string {
	target := fold(name)
	if len(target) < 3 {
		return nil
	}

	type candidate struct {
		name string
		dist int
	}
	var candidates []candidate
	for _, k := range known {
		folded := fold(k)
		dist := levenshtein.ComputeDistance(target, folded)
		if dist > distanceLimit(len(folded)) {
			continue
		}
		candidates = append(candidates, candidate{name: k, dist: dist})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist == candidates[j].dist {
			return candidates[i].name < candidates[j].name
		}
		return candidates[i].dist < candidates[j].dist
	})

	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}
	names := make([]string, len(candidates))
	for i, cand := range candidates {
		names[i] = cand.name
	}
	return names
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
