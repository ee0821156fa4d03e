package bootstrap

import "time"

// ShutdownTimeout bounds graceful shutdown of the HTTP server and pool
const ShutdownTimeout = 10 * time.Second

// Log messages for startup
const (
	LogMsgOpeningCatalogSource = "Opening catalog source"
	LogMsgCatalogLoaded        = "Catalog loaded"
	LogMsgMigrationsApplied    = "Database migrations applied"
	LogMsgSyncingCatalog       = "Syncing catalog file to database"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabasePool  = "Closing database pool"
	LogMsgServerStopped        = "Server stopped"
)

// Error messages
const (
	ErrMsgConnectDatabaseFailed = "failed to connect to database: %w"
	ErrMsgMigrateFailed         = "failed to migrate database: %w"
	ErrMsgCreateSourceFailed    = "failed to create catalog source: %w"
	ErrMsgLoadCatalogFailed     = "failed to load catalog: %w"
	ErrMsgSyncCatalogFailed     = "failed to sync catalog to database: %w"
	ErrMsgUnknownCatalogSource  = "unknown catalog source %q"
)
