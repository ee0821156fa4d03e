package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperVar = "ALCHEMY_TEST_HELPER_VAR"

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"unset", "", false, 7},
		{"valid", "42", true, 42},
		{"negative", "-3", true, -3},
		{"zero", "0", true, 0},
		{"empty", "", true, 7},
		{"not a number", "many", true, 7},
		{"float", "2.5", true, 7},
		{"padded", " 12 ", true, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(helperVar, tt.value)
			}
			assert.Equal(t, tt.want, getEnvAsInt(helperVar, 7))
		})
	}
}

func TestGetEnvAsFloat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{"fraction", "0.5", 0.5},
		{"integer", "12", 12},
		{"invalid", "fast", 3},
		{"empty", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(helperVar, tt.value)
			assert.InDelta(t, tt.want, getEnvAsFloat(helperVar, 3), 1e-9)
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"false", true, false},
		{"0", true, false},
		{"1", false, true},
		{"TRUE", false, true},
		{"sometimes", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(helperVar, tt.value)
			assert.Equal(t, tt.want, getEnvAsBool(helperVar, tt.def))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	const fallback = 90 * time.Second

	tests := []struct {
		value string
		want  time.Duration
	}{
		{"250ms", 250 * time.Millisecond},
		{"15m", 15 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"30", fallback},
		{"soon", fallback},
		{"", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(helperVar, tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration(helperVar, fallback))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv(helperVar, " 10.0.0.1, 10.0.0.2 ,,192.168.1.0/24 ")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2", "192.168.1.0/24"}, getEnvAsList(helperVar))

	t.Setenv(helperVar, " , ")
	assert.Nil(t, getEnvAsList(helperVar))
}

func TestLoad_TuningFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultDBMaxConnLifetime, cfg.DBMaxConnLifetime)
		assert.Equal(t, DefaultBrewMaxIngredients, cfg.BrewMaxIngredients)
		assert.Equal(t, DefaultBrewMaxCandidates, cfg.BrewMaxCandidates)
		assert.Equal(t, DefaultBrewCacheSize, cfg.BrewCacheSize)
		assert.Equal(t, DefaultBrewCacheTTL, cfg.BrewCacheTTL)
		assert.Equal(t, DefaultBrewTimeout, cfg.BrewTimeout)
		assert.InDelta(t, DefaultRateLimitRPS, cfg.RateLimitRPS, 1e-9)
		assert.Equal(t, DefaultRateLimitBurst, cfg.RateLimitBurst)
		assert.True(t, cfg.CatalogWatch)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")
		t.Setenv("BREW_MAX_CANDIDATES", "12")
		t.Setenv("BREW_CACHE_SIZE", "0")
		t.Setenv("BREW_CACHE_TTL", "30s")
		t.Setenv("BREW_TIMEOUT", "5s")
		t.Setenv("RATE_LIMIT_RPS", "2.5")
		t.Setenv("RATE_LIMIT_BURST", "5")
		t.Setenv("CATALOG_WATCH", "false")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
		assert.Equal(t, 12, cfg.BrewMaxCandidates)
		assert.Equal(t, 0, cfg.BrewCacheSize)
		assert.Equal(t, 30*time.Second, cfg.BrewCacheTTL)
		assert.Equal(t, 5*time.Second, cfg.BrewTimeout)
		assert.InDelta(t, 2.5, cfg.RateLimitRPS, 1e-9)
		assert.Equal(t, 5, cfg.RateLimitBurst)
		assert.False(t, cfg.CatalogWatch)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "lots")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "a while")
		t.Setenv("BREW_CACHE_TTL", "forever")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultBrewCacheTTL, cfg.BrewCacheTTL)
	})

	t.Run("rejects limits below a pair", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("BREW_MAX_INGREDIENTS", "1")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "BREW_MAX_INGREDIENTS")
	})

	t.Run("rejects negative rate limit", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("RATE_LIMIT_BURST", "-1")

		_, err := Load()

		require.Error(t, err)
	})
}
