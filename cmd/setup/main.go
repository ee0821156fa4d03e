// Command setup creates the database if needed, applies migrations and syncs
// the catalog file into it. An optional argument overrides CATALOG_PATH.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Alchemy_Go/internal/bootstrap"
	"github.com/osse101/Alchemy_Go/internal/config"
	"github.com/osse101/Alchemy_Go/internal/database/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	catalogPath := cfg.CatalogPath
	if len(os.Args) > 1 {
		catalogPath = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	pool, err := bootstrap.ConnectDatabase(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer pool.Close()

	result, err := bootstrap.SyncCatalogFile(ctx, catalogPath, postgres.NewCatalogRepository(pool))
	if err != nil {
		log.Fatalf("%v", err)
	}

	if result.Skipped {
		fmt.Printf("Catalog %s already up to date.\n", result.Version)
		return
	}
	fmt.Printf("Catalog %s synced: %d effects, %d ingredients (%d effects and %d ingredients removed).\n",
		result.Version,
		result.EffectsUpserted,
		result.IngredientsUpserted,
		result.EffectsDeleted,
		result.IngredientsDeleted)
}

// ensureDatabase connects to the maintenance database and creates DB_NAME
// when it does not exist yet
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	maintenance := *cfg
	maintenance.DBName = "postgres"

	conn, err := pgx.Connect(ctx, maintenance.GetDBConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
