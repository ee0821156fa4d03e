package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog lookup errors
	ErrMsgUnknownIngredient = "unknown ingredient"
	ErrMsgUnknownEffect     = "unknown effect"
	ErrMsgEffectNotFound    = "effect not found"

	// Engine invariant errors
	ErrMsgInvalidCombinationSize = "invalid combination size"

	// Request errors
	ErrMsgTooManyIngredients = "too many ingredients"
	ErrMsgInvalidInput       = "invalid input"

	// Service state errors
	ErrMsgCatalogNotLoaded = "catalog not loaded"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrUnknownIngredient is returned when a requested ingredient is not in the catalog
	ErrUnknownIngredient = errors.New(ErrMsgUnknownIngredient)

	// ErrUnknownEffect marks an ingredient slot that references a missing effect.
	// It is a data-integrity error raised while building a catalog.
	ErrUnknownEffect = errors.New(ErrMsgUnknownEffect)

	// ErrEffectNotFound is returned when a requested effect is not in the catalog
	ErrEffectNotFound = errors.New(ErrMsgEffectNotFound)

	// ErrInvalidCombinationSize means the aggregator received fewer than two ingredients
	ErrInvalidCombinationSize = errors.New(ErrMsgInvalidCombinationSize)

	ErrTooManyIngredients = errors.New(ErrMsgTooManyIngredients)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)

	ErrCatalogNotLoaded = errors.New(ErrMsgCatalogNotLoaded)
)
