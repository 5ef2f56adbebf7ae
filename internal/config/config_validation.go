// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-env-keeper/models"

// validate checks that the final merged [Config] satisfies the invariants
// both binaries rely on at startup. Site and context fields stay
// unvalidated on purpose: an unknown context string is a legal branch
// name, and missing identifiers degrade resolution instead of failing it.
func (cfg *Config) validate() error {
	if cfg.Resolve.Scope != "" && !validScope(cfg.Resolve.Scope) {
		return ErrInvalidResolveConfigs
	}

	if cfg.API.Timeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidTimeoutConfigs
	}

	return nil
}

func validScope(s string) bool {
	if s == string(models.ScopeAny) {
		return true
	}
	for _, scope := range models.AvailableScopes {
		if string(scope) == s {
			return true
		}
	}
	return false
}
