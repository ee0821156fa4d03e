package domain

import (
	"math"
	"strconv"
	"strings"
)

// Effect is a magical property an ingredient can contribute to a potion.
// Magnitude and Duration of 0 mean the attribute does not apply.
type Effect struct {
	Name        string  `json:"name" yaml:"name" db:"name"`
	Description string  `json:"description" yaml:"description" db:"description"`
	School      string  `json:"school" yaml:"school" db:"school"`
	Type        string  `json:"type" yaml:"type" db:"effect_type"`
	Cost        float64 `json:"cost" yaml:"cost" db:"cost"`
	Duration    int     `json:"dur" yaml:"dur" db:"duration"`
	Magnitude   int     `json:"mag" yaml:"mag" db:"magnitude"`
}

// BaseValue is the gold value of the effect at its listed magnitude and duration:
// floor(cost * mag^1.1 * dur^1.1 * 0.0794328), skipping factors that do not apply.
func (e Effect) BaseValue() int {
	result := e.Cost
	if e.Magnitude > 0 {
		result *= math.Pow(float64(e.Magnitude), MagnitudeExponent)
	}
	if e.Duration > 0 {
		result *= math.Pow(float64(e.Duration), DurationExponent) * DurationFactor
	}
	return int(math.Floor(result))
}

// Describe renders the description with its placeholders filled in.
// The magnitude is scaled by power and rounded to the nearest point.
func (e Effect) Describe(power float64) string {
	mag := int(math.Round(float64(e.Magnitude) * power))
	return strings.NewReplacer(
		PlaceholderMagnitude, strconv.Itoa(mag),
		PlaceholderDuration, strconv.Itoa(e.Duration),
	).Replace(e.Description)
}

// IsBeneficial reports whether the effect helps the drinker
func (e Effect) IsBeneficial() bool {
	return e.Type == EffectTypeBeneficial
}
