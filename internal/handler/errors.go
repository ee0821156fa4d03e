package handler

// StatusClientClosedRequest is the nginx convention for a client that went away
const StatusClientClosedRequest = 499

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidFarmable   = "Invalid farmable parameter, expected true or false"

	// Catalog error messages
	ErrMsgEffectNotFound     = "Effect not found"
	ErrMsgIngredientNotFound = "Ingredient not found"

	// Admin error messages
	ErrMsgReloadCatalogFailed = "Failed to reload catalog"
)

// Success messages for API responses
const (
	MsgCatalogReloaded = "Catalog reloaded"
	MsgCacheCleared    = "Brew cache cleared"
)

// Operation names used in logs
const (
	OpBrew           = "Brew"
	OpSearchEffects  = "Search by effects"
	OpListEffects    = "List effects"
	OpGetEffect      = "Get effect"
	OpListIngredient = "List ingredients"
	OpGetIngredient  = "Get ingredient"
	OpReloadCatalog  = "Reload catalog"
)

// Query parameter names
const (
	ParamIngredients = "ingredients"
	ParamEffects     = "effects"
	ParamLimit       = "limit"
	ParamSortBy      = "sortby"
	ParamSchool      = "school"
	ParamType        = "type"
	ParamFarmable    = "farmable"
	ParamName        = "name"
)

// MaxQueryLimit caps the limit query parameter
const MaxQueryLimit = 1000
