package logger

// Level names accepted in LOG_LEVEL, case-insensitive
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Attribute keys
const (
	AttrKeyService        = "service"
	AttrKeyVersion        = "version"
	AttrKeyEnvironment    = "environment"
	AttrKeyRequestID      = "request_id"
	AttrKeyCatalogVersion = "catalog_version"
)

// sourceEnvironments get file:line on every record
var sourceEnvironments = map[string]bool{
	"dev":         true,
	"development": true,
	"local":       true,
}
