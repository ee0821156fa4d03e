package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Brewing metric names
const (
	MetricNameBrewRequests       = "alchemy_brew_requests_total"
	MetricNameBrewDuration       = "alchemy_brew_duration_seconds"
	MetricNameCombinationsTested = "alchemy_combinations_tested_total"
	MetricNamePotionsFound       = "alchemy_potions_found"
	MetricNameBrewCacheLookups   = "alchemy_brew_cache_lookups_total"
)

// Catalog metric names
const (
	MetricNameCatalogReloads = "alchemy_catalog_reloads_total"
	MetricNameCatalogEntries = "alchemy_catalog_entries"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Brewing metric help text
const (
	HelpTextBrewRequests       = "Total number of brew requests by mode and outcome"
	HelpTextBrewDuration       = "Time spent enumerating and ranking potions in seconds"
	HelpTextCombinationsTested = "Total number of ingredient combinations evaluated"
	HelpTextPotionsFound       = "Number of distinct potions returned per brew"
	HelpTextBrewCacheLookups   = "Brew result cache lookups by result"
)

// Catalog metric help text
const (
	HelpTextCatalogReloads = "Total number of catalog reloads by outcome"
	HelpTextCatalogEntries = "Number of entries in the active catalog snapshot"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelMode    = "mode"
	LabelOutcome = "outcome"
	LabelResult  = "result"
	LabelKind    = "kind"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Cache result label values
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Brew mode label values
const (
	ModeIngredients = "ingredients"
	ModeEffects     = "effects"
)

// Catalog kind label values
const (
	CatalogKindEffects     = "effects"
	CatalogKindIngredients = "ingredients"
)

// UnmatchedRoute labels requests that did not match any route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// BrewLatencyBuckets range from 10µs to 2.5s; a full 3-subset sweep of a
// large catalog lands in the upper buckets
var BrewLatencyBuckets = []float64{.00001, .0001, .001, .005, .01, .05, .1, .5, 1, 2.5}

// PotionCountBuckets covers result sets from empty to several thousand
var PotionCountBuckets = []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000}
