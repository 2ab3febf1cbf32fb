package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "5050", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "DEMO_KEY", cfg.APOD.APIKey)
	assert.Equal(t, "https://api.nasa.gov", cfg.APOD.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.APOD.Timeout)
	assert.Zero(t, cfg.APOD.RateLimit)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)

	// development mode always ends up with a usable signing secret
	assert.Len(t, cfg.JWTSecret, 64)
}

func TestLoad_EnvOverrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":            "8080",
		"ENV":             "production",
		"JWT_SECRET":      "s3cret",
		"DATABASE_URL":    "postgres://localhost/apod",
		"NASA_API_KEY":    "abc",
		"APOD_RATE_LIMIT": "2.5",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "abc", cfg.APOD.APIKey)
	assert.InDelta(t, 2.5, cfg.APOD.RateLimit, 0.0001)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apod.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "7070"
env: staging
jwt_secret: from-file
database:
  url: postgres://file/apod
apod:
  api_key: file-key
`), 0o600))

	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"APOD_CONFIG_FILE": path,
		"NASA_API_KEY":     "env-key",
	}))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "postgres://file/apod", cfg.Database.URL)
	assert.Equal(t, "env-key", cfg.APOD.APIKey)
	// untouched by the file, filled from defaults
	assert.Equal(t, "https://api.nasa.gov", cfg.APOD.BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"APOD_CONFIG_FILE": filepath.Join(t.TempDir(), "nope.yaml"),
	}))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Env: "production"}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingDatabaseURL)

	cfg.Database.URL = "postgres://localhost/apod"
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)

	cfg.JWTSecret = "x"
	assert.NoError(t, cfg.Validate())
}
