package model

import "errors"

// Import failure taxonomy. Wrap with fmt.Errorf("...: %w") and test with errors.Is.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrNetworkMismatch      = errors.New("network mismatch")
	ErrNotSynced            = errors.New("node is not synced")
	ErrStoreNotFound        = errors.New("consensus store not found")
	ErrAlreadyInitialized   = errors.New("database already initialized")
	ErrExtractionFailure    = errors.New("utxo extraction failed")
	ErrLoadFailure          = errors.New("utxo load failed")
)
