package domain

// Effect valuation tuning, matching the in-game gold cost curve
const (
	MagnitudeExponent = 1.1
	DurationExponent  = 1.1
	DurationFactor    = 0.0794328
)

// Ingredient limits
const (
	// MaxEffectSlots is the number of effects an ingredient can carry
	MaxEffectSlots = 4

	// DefaultMultiplier is applied when an effect slot omits power or value
	DefaultMultiplier = 1.0
)

// Combination sizes
const (
	MinCombinationSize = 2
	MaxCombinationSize = 3
)

// Description placeholders
const (
	PlaceholderMagnitude = "{mag}"
	PlaceholderDuration  = "{dur}"
)

// Effect types
const (
	EffectTypeBeneficial = "Beneficial"
	EffectTypeHarmful    = "Harmful"
)

// PotionNamePrefix starts every potion display name
const PotionNamePrefix = "Potion of "

// PotionNameJoiner joins effect names inside a potion display name
const PotionNameJoiner = " and "
