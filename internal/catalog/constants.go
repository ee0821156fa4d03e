package catalog

import "time"

// Document formats, chosen by file extension
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// SchemaName is the registered name of the embedded catalog schema
const SchemaName = "catalog.schema.json"

// VersionLength is the number of hex characters kept from the content hash
const VersionLength = 12

// DefaultWatchDebounce coalesces bursts of file events into one reload
const DefaultWatchDebounce = 250 * time.Millisecond

// Sort keys
const (
	SortByName   = "name"
	SortByCost   = "cost"
	SortByValue  = "value"
	SortBySchool = "school"
	SortByWeight = "weight"
)

// MaxSuggestions caps "did you mean" candidates for an unknown name
const MaxSuggestions = 3

// Error messages
const (
	ErrMsgReadCatalogFailed   = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed  = "failed to parse catalog: %w"
	ErrMsgSchemaCheckFailed   = "schema validation failed for %s: %w"
	ErrMsgUnsupportedFormat   = "unsupported catalog format %q"
	ErrMsgLoadEffectsFailed   = "failed to load effects: %w"
	ErrMsgLoadIngredientsFail = "failed to load ingredients: %w"
)

// Log messages
const (
	LogMsgCatalogReloaded     = "Catalog reloaded"
	LogMsgCatalogReloadFailed = "Catalog reload failed, keeping previous snapshot"
	LogMsgCatalogUnchanged    = "Catalog unchanged, skipping sync"
	LogMsgCatalogSynced       = "Catalog sync completed"
	LogMsgWatchingCatalog     = "Watching catalog file for changes"
)
