package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidResolveConfigs indicates an unknown pipeline scope name.
	ErrInvalidResolveConfigs = errors.New("invalid resolve configuration")
	// ErrInvalidTimeoutConfigs indicates a negative timeout value.
	ErrInvalidTimeoutConfigs = errors.New("invalid timeout configuration")
)
