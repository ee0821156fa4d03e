package brewing

import "time"

// SortKey orders a potion listing
type SortKey string

// Sort keys
const (
	SortByValue SortKey = "value"
	SortByName  SortKey = "name"
)

// Service defaults
const (
	DefaultMaxIngredients = 5
	DefaultMaxCandidates  = 60
	DefaultCacheSize      = 512
	DefaultCacheTTL       = 10 * time.Minute
	DefaultTimeout        = 30 * time.Second
)

// ctxCheckInterval is how many combinations are evaluated between context checks
const ctxCheckInterval = 1024

// cacheKeySeparator joins cache key parts; it cannot appear in a folded name
const cacheKeySeparator = "\x1f"

// Log messages
const (
	LogMsgBrewCompleted = "Brew completed"
	LogMsgBrewFailed    = "Brew failed"
	LogMsgCacheCleared  = "Brew cache cleared"
)
