// Package config handles application configuration and environment loading.
package config

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// AuthConfig holds token signing and bootstrap identity configuration.
type AuthConfig struct {
	// TokenSecret is the base64-encoded symmetric signing key. It is loaded
	// once at startup and immutable for the process lifetime; rotation
	// happens at a process-restart boundary. Never logged.
	TokenSecret string

	// TokenLifetime is the fixed validity window of issued tokens
	// (default: 12h).
	TokenLifetime time.Duration

	// Bootstrap master credentials, seeded on first start when the user
	// table is empty. Optional.
	BootstrapEmail    string
	BootstrapPassword string
	BootstrapName     string
}

// Validate checks that the auth configuration is internally consistent.
func (a *AuthConfig) Validate() error {
	if a.TokenSecret == "" {
		return fmt.Errorf("AUTH_TOKEN_SECRET must be set")
	}
	if _, err := base64.StdEncoding.DecodeString(a.TokenSecret); err != nil {
		return fmt.Errorf("AUTH_TOKEN_SECRET must be base64-encoded: %w", err)
	}
	if a.BootstrapEmail != "" && a.BootstrapPassword == "" {
		return fmt.Errorf("BOOTSTRAP_MASTER_PASSWORD is required when BOOTSTRAP_MASTER_EMAIL is set")
	}
	return nil
}

// DecodeTokenSecret returns the raw signing key bytes.
func (a *AuthConfig) DecodeTokenSecret() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(a.TokenSecret)
	if err != nil {
		return nil, fmt.Errorf("decode AUTH_TOKEN_SECRET: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("AUTH_TOKEN_SECRET decodes to an empty key")
	}
	return raw, nil
}

// Config holds the configuration for the HTTP API and SQLite storage.
type Config struct {
	DBPath     string // path to the SQLite database file (default "sheetvault.sqlite")
	ListenAddr string // HTTP listen address (default ":8080")
	LogLevel   string // log level: debug, info, warn, error (default "info")
	Env        string // environment: "development" (default) or "production"

	// CORS
	CORSAllowedOrigins []string // allowed origins for CORS (default: ["*"])

	// Auth holds token and bootstrap identity configuration.
	Auth AuthConfig
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when the server is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	return c.Auth.Validate()
}

// LoadFromEnv loads configuration from environment variables, applying
// defaults for anything unset.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		DBPath:     os.Getenv("DB_PATH"),
		ListenAddr: os.Getenv("LISTEN_ADDR"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		Env:        os.Getenv("ENV"),
		Auth: AuthConfig{
			TokenSecret:       os.Getenv("AUTH_TOKEN_SECRET"),
			TokenLifetime:     12 * time.Hour,
			BootstrapEmail:    os.Getenv("BOOTSTRAP_MASTER_EMAIL"),
			BootstrapPassword: os.Getenv("BOOTSTRAP_MASTER_PASSWORD"),
			BootstrapName:     os.Getenv("BOOTSTRAP_MASTER_NAME"),
		},
	}

	if cfg.DBPath == "" {
		cfg.DBPath = "sheetvault.sqlite"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.Auth.BootstrapName == "" {
		cfg.Auth.BootstrapName = "Game Master"
	}

	if v := os.Getenv("AUTH_TOKEN_LIFETIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse AUTH_TOKEN_LIFETIME: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("AUTH_TOKEN_LIFETIME must be positive")
		}
		cfg.Auth.TokenLifetime = d
	}

	// CORS
	cfg.CORSAllowedOrigins = []string{"*"}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = origins
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv reads a .env file and sets any variables not already in the environment.
// Lines must be in KEY=VALUE format. Comments (#) and blank lines are skipped.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil // .env not found is not an error
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = stripQuotes(value)
		// Only set if not already in the environment (env vars take precedence)
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setenv %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes a single layer of matching quotes from a value.
func stripQuotes(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
