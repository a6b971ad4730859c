package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate направляет XDG-каталоги во временные и чистит env.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(t.TempDir(), "data"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	for _, key := range []string{
		"MYLEDGER_SERVER_URL", "MYLEDGER_DB_PATH", "MYLEDGER_PAGE_SIZE",
		"MYLEDGER_HTTP_TIMEOUT", "MYLEDGER_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	// Путь к базе выводится из XDG data home
	assert.Contains(t, cfg.DBPath, "myledger")
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MYLEDGER_SERVER_URL", "https://ledger.example.com")
	t.Setenv("MYLEDGER_PAGE_SIZE", "50")
	t.Setenv("MYLEDGER_HTTP_TIMEOUT", "5s")
	t.Setenv("MYLEDGER_LOG_LEVEL", "debug")
	t.Setenv("MYLEDGER_DB_PATH", "/tmp/ledger-test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://ledger.example.com", cfg.ServerURL)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/tmp/ledger-test.db", cfg.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_YAMLFile(t *testing.T) {
	isolate(t)

	dir := filepath.Join(xdg.ConfigHome, "myledger")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	yaml := "server_url: http://yaml.example.com\npage_size: 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://yaml.example.com", cfg.ServerURL)
	assert.Equal(t, 10, cfg.PageSize)

	// Env перекрывает файл
	t.Setenv("MYLEDGER_SERVER_URL", "http://env.example.com")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", cfg.ServerURL)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)

	dir := filepath.Join(xdg.ConfigHome, "myledger")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{broken"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			ServerURL:   "http://localhost:8000",
			DBPath:      "ledger.db",
			LogLevel:    "info",
			PageSize:    20,
			HTTPTimeout: time.Second,
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.ServerURL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.PageSize = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.PageSize = 101
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.HTTPTimeout = 0
	assert.Error(t, cfg.Validate())
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel())
	}
}
