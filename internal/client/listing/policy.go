package listing

import (
	"errors"
	"fmt"
	"strings"
)

// StockPolicy selects how a stock controller keeps its entry's counter.
type StockPolicy string

const (
	// PolicyIncremental adjusts the cached counter locally on each confirmed
	// mutation.
	PolicyIncremental StockPolicy = "incremental"
	// PolicyServer re-reads the entry after each confirmed mutation and
	// falls back to the local adjustment when that read fails.
	PolicyServer StockPolicy = "server"
)

var ErrUnknownPolicy = errors.New("unknown stock policy")

func ParseStockPolicy(s string) (StockPolicy, error) {
	switch p := StockPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyIncremental, nil
	case PolicyIncremental, PolicyServer:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
