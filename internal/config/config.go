// Package config loads client configuration from an optional YAML
// file layered under environment variables.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the client needs to start.
type Config struct {
	ServerURL   string        `yaml:"server_url"`
	DBPath      string        `yaml:"db_path"`
	LogLevel    string        `yaml:"log_level"`
	PageSize    int           `yaml:"page_size"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

func defaults() *Config {
	return &Config{
		ServerURL:   "http://localhost:8000",
		LogLevel:    "info",
		PageSize:    20,
		HTTPTimeout: 30 * time.Second,
	}
}

// Load reads the optional config file, then .env, then environment
// variables. Env wins over file, file wins over defaults.
func Load() (*Config, error) {
	// .env, если лежит рядом; отсутствие файла не ошибка
	_ = godotenv.Load()

	cfg := defaults()

	path := filepath.Join(xdg.ConfigHome, "myledger", "config.yaml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.ServerURL = getEnv("MYLEDGER_SERVER_URL", cfg.ServerURL)
	cfg.DBPath = getEnv("MYLEDGER_DB_PATH", cfg.DBPath)
	cfg.LogLevel = getEnv("MYLEDGER_LOG_LEVEL", cfg.LogLevel)
	cfg.PageSize = getEnvInt("MYLEDGER_PAGE_SIZE", cfg.PageSize)
	cfg.HTTPTimeout = getEnvDuration("MYLEDGER_HTTP_TIMEOUT", cfg.HTTPTimeout)

	if cfg.DBPath == "" {
		dbPath, err := xdg.DataFile("myledger/client.db")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data path: %w", err)
		}
		cfg.DBPath = dbPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.ServerURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid server URL %q", c.ServerURL)
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("invalid page size %d: must be between 1 and 100", c.PageSize)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("invalid http timeout %s: must be positive", c.HTTPTimeout)
	}
	return nil
}

// SlogLevel maps the configured level name onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
