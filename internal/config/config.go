package config

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/sethvargo/go-envconfig"
)

// Config is the full runtime configuration. Values come from an optional
// YAML file (APOD_CONFIG_FILE) and are then overridden by the environment.
type Config struct {
	Port      string `env:"PORT, overwrite, default=5050" yaml:"port"`
	Env       string `env:"ENV, overwrite, default=development" yaml:"env"`
	LogLevel  string `env:"LOG_LEVEL, overwrite, default=info" yaml:"log_level"`
	JWTSecret string `env:"JWT_SECRET, overwrite" yaml:"jwt_secret"`

	Database DatabaseConfig `yaml:"database"`
	APOD     APODConfig     `yaml:"apod"`
}

type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL, overwrite" yaml:"url"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS, overwrite, default=20" yaml:"max_open_conns"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS, overwrite, default=20" yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, overwrite, default=30m" yaml:"conn_max_lifetime"`
}

// APODConfig configures the upstream picture API client.
type APODConfig struct {
	APIKey  string        `env:"NASA_API_KEY, overwrite, default=DEMO_KEY" yaml:"api_key"`
	BaseURL string        `env:"APOD_BASE_URL, overwrite, default=https://api.nasa.gov" yaml:"base_url"`
	Timeout time.Duration `env:"APOD_TIMEOUT, overwrite, default=15s" yaml:"timeout"`

	// RateLimit is the outbound request rate in requests per second.
	// Zero disables limiting.
	RateLimit float64 `env:"APOD_RATE_LIMIT, overwrite, default=0" yaml:"rate_limit"`
	RateBurst int     `env:"APOD_RATE_BURST, overwrite, default=1" yaml:"rate_burst"`
}

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is required outside development")
)

// Load reads the optional YAML file named by APOD_CONFIG_FILE and then
// applies environment variables on top of it.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config

	if path, ok := lookuper.Lookup("APOD_CONFIG_FILE"); ok && path != "" {
		if err := readFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if cfg.JWTSecret == "" && cfg.IsDevelopment() {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = secret
	}

	return &cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// IsDevelopment reports whether the server runs in local dev mode, which
// relaxes cookie security and enables console logging.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development")
}

// Validate checks that the values the server cannot start without are set.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate dev secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
