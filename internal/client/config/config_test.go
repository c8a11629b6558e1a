package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	return &Config{
		APIBaseURL:     "http://localhost:8000/api",
		DatabasePath:   "stockkeeper.db",
		SearchDebounce: 300 * time.Millisecond,
		StockPolicy:    "incremental",
		LogBackend:     "slog",
		LogLevel:       "info",
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, cmp.Diff(defaults(), &c))
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())

	t.Setenv("STOCKKEEPER_DATABASE_PATH", "env.db")
	t.Setenv("STOCKKEEPER_LOG_LEVEL", "debug")
	path := writeTempJSON(t, "", "", map[string]any{
		"log_level":    "warn",
		"stock_policy": "server",
	})
	os.Args = []string{"testbin", "-c", path, "-p", "incremental"}

	cfg := LoadConfig()
	require.NotNil(t, cfg, "LoadConfig must not return nil")

	want := defaults()
	want.DatabasePath = "env.db"
	want.LogLevel = "warn"
	want.StockPolicy = "incremental"
	assert.Empty(t, cmp.Diff(want, cfg))
}
