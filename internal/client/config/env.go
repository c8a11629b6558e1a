package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "STOCKKEEPER_"

// parseEnv loads dotenv files into the process environment, skipping ones
// that do not exist, and overlays cfg with any non-empty STOCKKEEPER_*
// variable. Unparsable numbers or durations panic, like bad flags do.
func parseEnv(cfg *Config, files ...string) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	cfg.APIBaseURL = getEnv("API_BASE_URL", cfg.APIBaseURL)
	cfg.DatabasePath = getEnv("DATABASE_PATH", cfg.DatabasePath)
	cfg.StockPolicy = getEnv("STOCK_POLICY", cfg.StockPolicy)
	cfg.LogBackend = getEnv("LOG_BACKEND", cfg.LogBackend)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.OTLPEndpoint = getEnv("OTLP_ENDPOINT", cfg.OTLPEndpoint)

	if v := getEnv("SEARCH_DEBOUNCE", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.SearchDebounce = d
	}
	if v := getEnv("REQUESTS_PER_SECOND", ""); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(err)
		}
		cfg.RequestsPerSecond = rps
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(envPrefix + key); exists && value != "" {
		return value
	}
	return defaultValue
}
