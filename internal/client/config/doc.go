// Package config loads runtime configuration for the stockkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, then STOCKKEEPER_* environment
//     variables (see parseEnv). Variables already set win over the file.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     base URL of the REST API
//	-d string     path of the local sqlite database
//	-s duration   search debounce quiet interval
//	-p string     stock counter policy: incremental or server
//	-r float      outbound requests per second, 0 for unlimited
//	-b string     log backend: slog or zap
//	-l string     log level: debug, info, warn or error
//	-t string     OTLP/HTTP traces endpoint URL, empty to disable tracing
//
// # JSON schema
//
// Durations use timex.Duration, so "300ms" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "https://inventory.example.com/api",
//	  "database_path": "stockkeeper.db",
//	  "search_debounce": "300ms",
//	  "stock_policy": "incremental",
//	  "requests_per_second": 5,
//	  "log_backend": "zap",
//	  "log_level": "info",
//	  "otlp_endpoint": ""
//	}
//
// Keys missing from the file keep their earlier value.
package config
