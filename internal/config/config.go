package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	APIKey         string // API key for admin routes
	TrustedProxies []string

	// Catalog
	CatalogSource string // "file" or "postgres"
	CatalogPath   string
	CatalogWatch  bool

	// Database
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Brewing
	BrewMaxIngredients int
	BrewMaxCandidates  int
	BrewCacheSize      int
	BrewCacheTTL       time.Duration
	BrewTimeout        time.Duration

	// Rate limiting, per client IP
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "alchemy"),
		Version:     getEnv("VERSION", "dev"),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		CatalogSource: strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceFile)),
		CatalogPath:   getEnv("CATALOG_PATH", DefaultCatalogPath),
		CatalogWatch:  getEnvAsBool("CATALOG_WATCH", true),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "alchemy"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		BrewMaxIngredients: getEnvAsInt("BREW_MAX_INGREDIENTS", DefaultBrewMaxIngredients),
		BrewMaxCandidates:  getEnvAsInt("BREW_MAX_CANDIDATES", DefaultBrewMaxCandidates),
		BrewCacheSize:      getEnvAsInt("BREW_CACHE_SIZE", DefaultBrewCacheSize),
		BrewCacheTTL:       getEnvAsDuration("BREW_CACHE_TTL", DefaultBrewCacheTTL),
		BrewTimeout:        getEnvAsDuration("BREW_TIMEOUT", DefaultBrewTimeout),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.CatalogSource {
	case CatalogSourceFile:
		if c.CatalogPath == "" {
			return fmt.Errorf("CATALOG_PATH must be set when CATALOG_SOURCE is %q", CatalogSourceFile)
		}
	case CatalogSourcePostgres:
	default:
		return fmt.Errorf("invalid CATALOG_SOURCE %q: expected %q or %q",
			c.CatalogSource, CatalogSourceFile, CatalogSourcePostgres)
	}

	if c.BrewMaxIngredients < 2 {
		return fmt.Errorf("BREW_MAX_INGREDIENTS must be at least 2, got %d", c.BrewMaxIngredients)
	}
	if c.BrewMaxCandidates < 2 {
		return fmt.Errorf("BREW_MAX_CANDIDATES must be at least 2, got %d", c.BrewMaxCandidates)
	}
	if c.BrewCacheSize < 0 {
		return fmt.Errorf("BREW_CACHE_SIZE must not be negative, got %d", c.BrewCacheSize)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}

	// Validate API key is set where it matters
	if c.IsProduction() && c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security in %s", c.Environment)
	}
	return nil
}

// IsProduction reports whether the environment is a production one
func (c *Config) IsProduction() bool {
	return slices.Contains(productionEnvironments, strings.ToLower(c.Environment))
}

// UsesDatabase reports whether the service needs Postgres at runtime
func (c *Config) UsesDatabase() bool {
	return c.CatalogSource == CatalogSourcePostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.ParseDuration string, falling back to the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
