// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Secret Panel Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the secrets
// panel. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Store holds the connection settings for the host's secrets backend.
	Store Store `envPrefix:"STORE_"`

	// Panel holds list presentation settings (page sizes).
	Panel Panel `envPrefix:"PANEL_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running panel
	// (e.g. "1.2.3"). Shown in the UI footer.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Store holds the connection settings for the secrets backend. An empty
// address is valid: the panel starts in disabled mode and renders a
// read-only stub.
type Store struct {
	// HTTPAddress is the base address of the secrets API. A missing
	// scheme defaults to http.
	// Env: STORE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIKey is the host-issued key attached to every store request.
	// Env: STORE_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "30s", "1m"). Defaults to 15s.
	// Env: STORE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Panel holds list presentation settings.
type Panel struct {
	// PageSize is the limit for unfiltered list fetches. Defaults to 50.
	// Env: PANEL_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// SearchPageSize is the bound for search results, which are returned
	// as a single page. Defaults to 100.
	// Env: PANEL_SEARCH_PAGE_SIZE
	SearchPageSize int `env:"SEARCH_PAGE_SIZE"`
}

// Workers holds background worker settings.
type Workers struct {
	// RefreshInterval defines how often the background refresh worker
	// re-fetches the list (e.g. "5m"). Zero disables the worker.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetPanelConfig loads, merges, and validates the panel configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetPanelConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// validate checks invariants on the merged config and applies defaults for
// unset optional fields.
func (cfg *StructuredConfig) validate() error {
	if cfg.Panel.PageSize < 0 || cfg.Panel.SearchPageSize < 0 {
		return ErrInvalidPanelConfigs
	}
	if cfg.Store.RequestTimeout < 0 {
		return ErrInvalidStoreConfigs
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Panel.PageSize == 0 {
		cfg.Panel.PageSize = 50
	}
	if cfg.Panel.SearchPageSize == 0 {
		cfg.Panel.SearchPageSize = 100
	}
	if cfg.Store.RequestTimeout == 0 {
		cfg.Store.RequestTimeout = 15 * time.Second
	}

	return nil
}
