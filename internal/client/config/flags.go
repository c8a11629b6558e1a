package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/flagx"
)

var knownFlags = []string{"-a", "-d", "-s", "-p", "-r", "-b", "-l", "-t"}

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered with flagx.FilterArgs first so that -c/-config and anything else
// unknown here does not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the REST API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local sqlite database")
	fs.DurationVar(&cfg.SearchDebounce, "s", cfg.SearchDebounce, "search debounce interval")
	fs.StringVar(&cfg.StockPolicy, "p", cfg.StockPolicy, "stock counter policy (incremental|server)")
	fs.Float64Var(&cfg.RequestsPerSecond, "r", cfg.RequestsPerSecond, "outbound requests per second, 0 for unlimited")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog|zap)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.OTLPEndpoint, "t", cfg.OTLPEndpoint, "OTLP/HTTP traces endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
