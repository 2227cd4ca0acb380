package model

import "fmt"

// LoadStrategy selects how UTXO rows reach the target table.
type LoadStrategy string

const (
	// LoadStrategyTransaction writes every batch inside one database transaction.
	LoadStrategyTransaction LoadStrategy = "transaction"
	// LoadStrategyStaged copies batches into a staging table and publishes them in one transaction.
	LoadStrategyStaged LoadStrategy = "staged"
)

// ParseLoadStrategy validates a configured strategy name.
func ParseLoadStrategy(s string) (LoadStrategy, error) {
	switch strategy := LoadStrategy(s); strategy {
	case LoadStrategyTransaction, LoadStrategyStaged:
		return strategy, nil
	default:
		return "", fmt.Errorf("%w: unknown load strategy %q", ErrInvalidConfiguration, s)
	}
}
