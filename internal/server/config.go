package server

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the preview server configuration.
type Config struct {
	Port        string
	Environment string // development, production

	// SettingsPath points at a YAML/JSON grid settings file; empty uses the
	// Bootstrap defaults.
	SettingsPath string
	// ThemePath points at a go-theme manifest (JSON); empty renders unthemed.
	ThemePath    string
	ThemeVariant string
	// TemplatesDir overrides the bundled templates.
	TemplatesDir string

	ShutdownTimeout time.Duration
	// MaxBodyBytes limits request bodies.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables, loading a .env file
// first when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		SettingsPath: os.Getenv("FRONTEND_SETTINGS"),
		ThemePath:    os.Getenv("FRONTEND_THEME"),
		ThemeVariant: os.Getenv("FRONTEND_THEME_VARIANT"),
		TemplatesDir: os.Getenv("FRONTEND_TEMPLATES"),
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", os.Getenv("MAX_BODY_BYTES"))
	}
	cfg.MaxBodyBytes = maxBody

	return cfg, nil
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
