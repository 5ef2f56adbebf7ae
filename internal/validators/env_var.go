// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-env-keeper/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldKey targets the variable name of an env record.
	FieldKey = "key"

	// FieldScopes targets the scope set of an env record.
	FieldScopes = "scopes"

	// FieldValues targets the candidate value list of an env record.
	FieldValues = "values"
)

type EnvVarValidator struct {
}

func NewEnvVarValidator() Validator {
	return &EnvVarValidator{}
}

func (v *EnvVarValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EnvVar:
		return v.validateEnvVar(ctx, value, fields...)
	case *models.EnvVar:
		return v.validateEnvVar(ctx, *value, fields...)

	case []models.EnvVar:
		for _, record := range value {
			if err := v.validateEnvVar(ctx, record, fields...); err != nil {
				return fmt.Errorf("record %q: %w", record.Key, err)
			}
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *EnvVarValidator) validateEnvVar(_ context.Context, record models.EnvVar, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldScopes, FieldValues}
	}

	for _, field := range fields {
		switch field {
		case FieldKey:
			if record.Key == "" {
				return ErrEmptyKey
			}
		case FieldScopes:
			for _, scope := range record.Scopes {
				if !knownScope(scope) {
					return fmt.Errorf("%w: %q", ErrUnknownScope, scope)
				}
			}
		case FieldValues:
			if len(record.Values) == 0 {
				return ErrNoValues
			}
			for _, value := range record.Values {
				if value.Context == models.ContextBranch && value.ContextParameter == "" {
					return ErrEmptyBranchName
				}
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func knownScope(scope models.Scope) bool {
	if scope == models.ScopeAny {
		return true
	}
	for _, known := range models.AvailableScopes {
		if scope == known {
			return true
		}
	}
	return false
}
