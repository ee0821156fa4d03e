package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Alchemy_Go/internal/domain"
	"github.com/osse101/Alchemy_Go/internal/repository"
)

const (
	queryAllEffects = `
SELECT name, description, school, effect_type, cost, duration, magnitude
FROM effects
ORDER BY name`

	queryAllIngredients = `
SELECT name, weight, gold_value, farmable, link
FROM ingredients
ORDER BY name`

	queryAllSlots = `
SELECT ingredient_name, effect_name, power, value
FROM ingredient_effects
ORDER BY ingredient_name, slot`

	upsertEffect = `
INSERT INTO effects (name, description, school, effect_type, cost, duration, magnitude)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (name) DO UPDATE SET
    description = EXCLUDED.description,
    school      = EXCLUDED.school,
    effect_type = EXCLUDED.effect_type,
    cost        = EXCLUDED.cost,
    duration    = EXCLUDED.duration,
    magnitude   = EXCLUDED.magnitude`

	upsertIngredient = `
INSERT INTO ingredients (name, weight, gold_value, farmable, link)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO UPDATE SET
    weight     = EXCLUDED.weight,
    gold_value = EXCLUDED.gold_value,
    farmable   = EXCLUDED.farmable,
    link       = EXCLUDED.link`

	insertSlot = `
INSERT INTO ingredient_effects (ingredient_name, slot, effect_name, power, value)
VALUES ($1, $2, $3, $4, $5)`

	deleteSlotsFor       = `DELETE FROM ingredient_effects WHERE ingredient_name = ANY($1)`
	deleteIngredientsNot = `DELETE FROM ingredients WHERE NOT (name = ANY($1))`
	deleteEffectsNot     = `DELETE FROM effects WHERE NOT (name = ANY($1))`

	selectSyncMetadata = `
SELECT config_name, last_sync_time, file_hash
FROM sync_metadata
WHERE config_name = $1`

	upsertSyncMetadata = `
INSERT INTO sync_metadata (config_name, last_sync_time, file_hash)
VALUES ($1, $2, $3)
ON CONFLICT (config_name) DO UPDATE SET
    last_sync_time = EXCLUDED.last_sync_time,
    file_hash      = EXCLUDED.file_hash`
)

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

var _ repository.Catalog = (*CatalogRepository)(nil)

// GetAllEffects returns every effect in name order
func (r *CatalogRepository) GetAllEffects(ctx context.Context) ([]domain.Effect, error) {
	rows, err := r.pool.Query(ctx, queryAllEffects)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryEffects, err)
	}

	effects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Effect, error) {
		var e domain.Effect
		err := row.Scan(&e.Name, &e.Description, &e.School, &e.Type, &e.Cost, &e.Duration, &e.Magnitude)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryEffects, err)
	}
	return effects, nil
}

// GetAllIngredients returns every ingredient in name order with slots in slot order
func (r *CatalogRepository) GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := r.pool.Query(ctx, queryAllIngredients)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryIngredients, err)
	}
	ingredients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ingredient, error) {
		var ing domain.Ingredient
		err := row.Scan(&ing.Name, &ing.Weight, &ing.GoldValue, &ing.Farmable, &ing.Link)
		return ing, err
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryIngredients, err)
	}

	index := make(map[string]int, len(ingredients))
	for i := range ingredients {
		index[ingredients[i].Name] = i
	}

	rows, err = r.pool.Query(ctx, queryAllSlots)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuerySlots, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ingredientName string
		var slot domain.EffectSlot
		if err := rows.Scan(&ingredientName, &slot.Name, &slot.Power, &slot.Value); err != nil {
			return nil, fmt.Errorf(ErrMsgQuerySlots, err)
		}
		if i, ok := index[ingredientName]; ok {
			ingredients[i].Effects = append(ingredients[i].Effects, slot)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgQuerySlots, err)
	}

	return ingredients, nil
}

// ReplaceCatalog makes the stored catalog match the given records in one
// transaction. Listed records are upserted, unlisted ones deleted, and the
// slots of every listed ingredient rewritten.
func (r *CatalogRepository) ReplaceCatalog(ctx context.Context, effects []domain.Effect, ingredients []domain.Ingredient) (*repository.CatalogWriteResult, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	result := &repository.CatalogWriteResult{
		EffectsUpserted:     len(effects),
		IngredientsUpserted: len(ingredients),
	}

	effectNames := make([]string, len(effects))
	batch := &pgx.Batch{}
	for i, e := range effects {
		effectNames[i] = e.Name
		batch.Queue(upsertEffect, e.Name, e.Description, e.School, e.Type, e.Cost, e.Duration, e.Magnitude)
	}

	ingredientNames := make([]string, len(ingredients))
	for i, ing := range ingredients {
		ingredientNames[i] = ing.Name
		batch.Queue(upsertIngredient, ing.Name, ing.Weight, ing.GoldValue, ing.Farmable, ing.Link)
	}

	batch.Queue(deleteSlotsFor, ingredientNames)
	for _, ing := range ingredients {
		for slot, s := range ing.Effects {
			batch.Queue(insertSlot, ing.Name, slot, s.Name, s.Power, s.Value)
		}
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, fmt.Errorf(ErrMsgWriteCatalog, err)
	}

	// Removing ingredients first releases their slots' references to effects
	tag, err := tx.Exec(ctx, deleteIngredientsNot, ingredientNames)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgWriteCatalog, err)
	}
	result.IngredientsDeleted = int(tag.RowsAffected())

	tag, err = tx.Exec(ctx, deleteEffectsNot, effectNames)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgWriteCatalog, err)
	}
	result.EffectsDeleted = int(tag.RowsAffected())

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitCatalog, err)
	}
	return result, nil
}

// GetSyncMetadata retrieves sync metadata for a config file
func (r *CatalogRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var m domain.SyncMetadata
	err := r.pool.QueryRow(ctx, selectSyncMetadata, configName).Scan(&m.ConfigName, &m.LastSyncTime, &m.FileHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSyncMetadataNotFound
		}
		return nil, fmt.Errorf("failed to get sync metadata: %w", err)
	}
	return &m, nil
}

// UpsertSyncMetadata inserts or updates sync metadata for a config file
func (r *CatalogRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	if _, err := r.pool.Exec(ctx, upsertSyncMetadata, metadata.ConfigName, metadata.LastSyncTime, metadata.FileHash); err != nil {
		return fmt.Errorf("failed to upsert sync metadata: %w", err)
	}
	return nil
}
