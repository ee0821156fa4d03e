package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/Alchemy_Go/internal/domain"
	"github.com/osse101/Alchemy_Go/internal/logger"
	"github.com/osse101/Alchemy_Go/internal/repository"
)

// SyncConfigName keys the catalog's sync metadata row
const SyncConfigName = "alchemy_catalog"

// SyncResult contains the result of syncing a catalog to the database
type SyncResult struct {
	Version string
	Skipped bool
	repository.CatalogWriteResult
}

// SyncToRepository writes the snapshot into repo unless the stored metadata
// already carries the same version.
func SyncToRepository(ctx context.Context, c *Catalog, repo repository.Catalog) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	meta, err := repo.GetSyncMetadata(ctx, SyncConfigName)
	switch {
	case err == nil:
		if meta.FileHash == c.Version() {
			log.Info(LogMsgCatalogUnchanged, "version", c.Version())
			return &SyncResult{Version: c.Version(), Skipped: true}, nil
		}
	case errors.Is(err, repository.ErrSyncMetadataNotFound):
		// first sync
	default:
		return nil, fmt.Errorf("failed to get sync metadata: %w", err)
	}

	effects := make([]domain.Effect, 0, c.EffectCount())
	for _, e := range c.Effects(EffectFilter{}) {
		effects = append(effects, *e)
	}
	ingredients := make([]domain.Ingredient, 0, c.IngredientCount())
	for _, ing := range c.Ingredients(IngredientFilter{}) {
		ingredients = append(ingredients, copyIngredient(*ing))
	}

	written, err := repo.ReplaceCatalog(ctx, effects, ingredients)
	if err != nil {
		return nil, fmt.Errorf("failed to write catalog: %w", err)
	}

	if err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   SyncConfigName,
		LastSyncTime: time.Now(),
		FileHash:     c.Version(),
	}); err != nil {
		log.Warn("Failed to update catalog sync metadata", "error", err)
	}

	result := &SyncResult{Version: c.Version(), CatalogWriteResult: *written}
	log.Info(LogMsgCatalogSynced,
		"version", result.Version,
		"effects_upserted", result.EffectsUpserted,
		"effects_deleted", result.EffectsDeleted,
		"ingredients_upserted", result.IngredientsUpserted,
		"ingredients_deleted", result.IngredientsDeleted)

	return result, nil
}
