package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"ENV", "PORT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "SEED_DATA",
		"DB_DRIVER", "DB_PATH", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSL_MODE", "DATABASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.SeedData)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "finance_tracker", cfg.Database.Name)
	assert.Equal(t, "./finance_tracker.db", cfg.Database.Path)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "ledger")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "ledger", cfg.Database.Name)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mongo")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid LOG_LEVEL")
}
