package repository

import (
	"context"
	"errors"

	"github.com/osse101/Alchemy_Go/internal/domain"
)

// Catalog defines the interface for effect and ingredient persistence
type Catalog interface {
	// Read operations. Ingredient effect slots come back in slot order.
	GetAllEffects(ctx context.Context) ([]domain.Effect, error)
	GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error)

	// ReplaceCatalog upserts every record and deletes those not listed, in one transaction
	ReplaceCatalog(ctx context.Context, effects []domain.Effect, ingredients []domain.Ingredient) (*CatalogWriteResult, error)

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}

// CatalogWriteResult counts the rows touched by ReplaceCatalog
type CatalogWriteResult struct {
	EffectsUpserted     int
	EffectsDeleted      int
	IngredientsUpserted int
	IngredientsDeleted  int
}

// ErrSyncMetadataNotFound is returned when a config has never been synced
var ErrSyncMetadataNotFound = errors.New("sync metadata not found")
