package config

import "time"

// Catalog sources
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultCatalogPath = "configs/alchemy/catalog.yaml"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultBrewMaxIngredients = 5
	DefaultBrewMaxCandidates  = 60
	DefaultBrewCacheSize      = 512
	DefaultBrewCacheTTL       = 10 * time.Minute
	DefaultBrewTimeout        = 30 * time.Second

	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40
)

// Environments that require an API key
var productionEnvironments = []string{"prod", "production"}
