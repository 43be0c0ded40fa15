package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStoreConfigs indicates invalid store settings
	// (for example, a negative request timeout).
	ErrInvalidStoreConfigs = errors.New("invalid store configuration")
	// ErrInvalidPanelConfigs indicates invalid panel settings
	// (for example, a negative page size).
	ErrInvalidPanelConfigs = errors.New("invalid panel configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
