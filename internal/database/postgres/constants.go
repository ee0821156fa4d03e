package postgres

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgQueryEffects             = "failed to query effects: %w"
	ErrMsgQueryIngredients         = "failed to query ingredients: %w"
	ErrMsgQuerySlots               = "failed to query ingredient effects: %w"
	ErrMsgWriteCatalog             = "failed to write catalog: %w"
	ErrMsgCommitCatalog            = "failed to commit catalog: %w"
)

// Log Messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
