// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Config is the top-level configuration container for both go-env-keeper
// binaries. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// API holds connection settings for the remote env store.
	API API `envPrefix:"API_"`

	// Site identifies the account and site whose variables are resolved.
	Site Site `envPrefix:"SITE_"`

	// Resolve holds the default resolution request parameters.
	Resolve Resolve `envPrefix:"RESOLVE_"`

	// Server holds settings for the local dev proxy (envproxyd only).
	Server Server `envPrefix:"SERVER_"`

	// LogFile is where the interactive client writes its logs; stdout is
	// owned by the terminal UI. Empty means a "logs" file next to the
	// executable is not created and stdout is used.
	// Env: LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds connection settings for the remote env store.
type API struct {
	// BaseURL is the root of the env store REST API
	// (e.g. "https://api.envkeeper.dev").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is the bearer token used for every store request. When
	// Site.AccountID is empty, the token's subject claim supplies the
	// default account.
	// Env: API_TOKEN
	Token string `env:"TOKEN"`

	// Timeout bounds a single store request (e.g. "15s").
	// Env: API_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Site identifies the scopes a resolution request addresses.
type Site struct {
	// AccountID selects the account-wide scope. Optional: when empty it
	// is derived from the API token, and when that fails resolution
	// degrades to local sources only.
	// Env: SITE_ACCOUNT_ID
	AccountID string `env:"ACCOUNT_ID"`

	// SiteID selects the site-level scope. Optional.
	// Env: SITE_SITE_ID
	SiteID string `env:"SITE_ID"`
}

// Resolve holds default resolution parameters. Both binaries use them as
// the starting context/scope; the proxy additionally accepts per-request
// overrides via query parameters.
type Resolve struct {
	// Context is the deploy context or branch name to resolve for
	// (e.g. "production", "dp", "branch:feat/login"). Empty means "dev".
	// Env: RESOLVE_CONTEXT
	Context string `env:"CONTEXT"`

	// Scope restricts resolution to one pipeline stage
	// (builds | functions | runtime | post_processing | any).
	// Env: RESOLVE_SCOPE
	Scope string `env:"SCOPE"`
}

// Server holds network settings for the local dev proxy.
type Server struct {
	// HTTPAddress is the TCP address the proxy listens on, in
	// "host:port" form (e.g. "127.0.0.1:8910").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// UpstreamURL is the base URL of the local functions server whose
	// invocation results the proxy forwards (e.g. "http://localhost:9000").
	// Env: SERVER_UPSTREAM_URL
	UpstreamURL string `env:"UPSTREAM_URL"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the proxy cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to
// load or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
