package config

import "time"

// Config holds runtime settings for the stockkeeper CLI.
type Config struct {
	APIBaseURL        string
	DatabasePath      string
	SearchDebounce    time.Duration
	StockPolicy       string
	RequestsPerSecond float64
	LogBackend        string
	LogLevel          string
	OTLPEndpoint      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.DatabasePath = "stockkeeper.db"
	c.SearchDebounce = 300 * time.Millisecond
	c.StockPolicy = "incremental"
	c.RequestsPerSecond = 0
	c.LogBackend = "slog"
	c.LogLevel = "info"
	c.OTLPEndpoint = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
