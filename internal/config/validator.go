package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredDatabaseEnvVars must be set when the catalog lives in Postgres
var RequiredDatabaseEnvVars = []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"}

// placeholderValues are the example values shipped in .env.example
var placeholderValues = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
}

// CheckEnv inspects the raw environment before Load. Problems that would make
// the service misbehave are errors; weak but workable settings are returned
// as warnings for the caller to log.
func CheckEnv() (warnings []string, err error) {
	switch version := os.Getenv("ENV_SCHEMA_VERSION"); version {
	case ExpectedEnvSchemaVersion:
	case "":
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set, assuming %s", ExpectedEnvSchemaVersion))
	default:
		return nil, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s (your .env file may be outdated)",
			ExpectedEnvSchemaVersion, version)
	}

	if strings.EqualFold(os.Getenv("CATALOG_SOURCE"), CatalogSourcePostgres) {
		var missing []string
		for _, key := range RequiredDatabaseEnvVars {
			if os.Getenv(key) == "" {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("CATALOG_SOURCE=%s requires: %s", CatalogSourcePostgres, strings.Join(missing, ", "))
		}
	}

	for _, key := range []string{"DB_PASSWORD", "API_KEY"} {
		if os.Getenv(key) == placeholderValues[key] {
			warnings = append(warnings, key+" still holds the example value from .env.example")
		}
	}
	if os.Getenv("API_KEY") == "" {
		warnings = append(warnings, "API_KEY is not set, catalog reload is unprotected")
	}

	return warnings, nil
}
