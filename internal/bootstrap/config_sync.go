package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Alchemy_Go/internal/catalog"
	"github.com/osse101/Alchemy_Go/internal/config"
	"github.com/osse101/Alchemy_Go/internal/database"
	"github.com/osse101/Alchemy_Go/internal/database/postgres"
	"github.com/osse101/Alchemy_Go/internal/repository"
)

// ConnectDatabase opens the pool described by cfg and applies pending
// migrations. The caller owns the returned pool.
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgConnectDatabaseFailed, err)
	}

	applied, err := database.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf(ErrMsgMigrateFailed, err)
	}
	slog.Info(LogMsgMigrationsApplied, "count", applied)

	return pool, nil
}

// OpenCatalogSource builds the source named by cfg.CatalogSource. The pool is
// nil for file-backed catalogs.
func OpenCatalogSource(ctx context.Context, cfg *config.Config) (catalog.Source, *pgxpool.Pool, error) {
	slog.Info(LogMsgOpeningCatalogSource, "source", cfg.CatalogSource, "path", cfg.CatalogPath)

	switch cfg.CatalogSource {
	case config.CatalogSourceFile:
		source, err := catalog.NewFileSource(cfg.CatalogPath)
		if err != nil {
			return nil, nil, fmt.Errorf(ErrMsgCreateSourceFailed, err)
		}
		return source, nil, nil
	case config.CatalogSourcePostgres:
		pool, err := ConnectDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewRepositorySource(postgres.NewCatalogRepository(pool)), pool, nil
	default:
		return nil, nil, fmt.Errorf(ErrMsgUnknownCatalogSource, cfg.CatalogSource)
	}
}

// LoadCatalogStore creates a store over source and loads the first snapshot
func LoadCatalogStore(ctx context.Context, source catalog.Source) (*catalog.Store, error) {
	store := catalog.NewStore(source)
	c, err := store.Reload(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}
	slog.Info(LogMsgCatalogLoaded,
		"source", source.Name(),
		"version", c.Version(),
		"effects", c.EffectCount(),
		"ingredients", c.IngredientCount())
	return store, nil
}

// SyncCatalogFile loads the catalog file at path and writes it to repo.
// Unchanged content (same version as the last sync) is skipped.
func SyncCatalogFile(ctx context.Context, path string, repo repository.Catalog) (*catalog.SyncResult, error) {
	slog.Info(LogMsgSyncingCatalog, "path", path)

	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}

	result, err := catalog.SyncToRepository(ctx, c, repo)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSyncCatalogFailed, err)
	}

	return result, nil
}
