package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Variables(t *testing.T) {
	t.Setenv("STOCKKEEPER_API_BASE_URL", "https://inv.example.com/api")
	t.Setenv("STOCKKEEPER_SEARCH_DEBOUNCE", "150ms")
	t.Setenv("STOCKKEEPER_REQUESTS_PER_SECOND", "2.5")
	t.Setenv("STOCKKEEPER_LOG_BACKEND", "")

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, "https://inv.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
	assert.InDelta(t, 2.5, cfg.RequestsPerSecond, 1e-9)
	assert.Equal(t, "slog", cfg.LogBackend, "empty variable keeps the earlier value")
}

func TestParseEnv_DotenvFile(t *testing.T) {
	const key = "STOCKKEEPER_OTLP_ENDPOINT"
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=http://collector:4318/v1/traces\n"), 0o600))

	cfg := defaults()
	parseEnv(cfg, path)

	assert.Equal(t, "http://collector:4318/v1/traces", cfg.OTLPEndpoint)
}

func TestParseEnv_MissingFileIgnored(t *testing.T) {
	cfg := defaults()
	require.NotPanics(t, func() { parseEnv(cfg, filepath.Join(t.TempDir(), "absent.env")) })
	assert.Equal(t, defaults(), cfg)
}

func TestParseEnv_BadDurationPanics(t *testing.T) {
	t.Setenv("STOCKKEEPER_SEARCH_DEBOUNCE", "soon")

	require.Panics(t, func() { parseEnv(defaults()) })
}
