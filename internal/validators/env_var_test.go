// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validEnvVar() models.EnvVar {
	return models.EnvVar{
		Key:    "DB_URL",
		Scopes: []models.Scope{models.ScopeBuilds, models.ScopeRuntime},
		Values: []models.EnvVarValue{
			{Context: models.ContextAll, Value: "postgres://db"},
		},
	}
}

// ---------------------------------------------------------------------------
// TestNewEnvVarValidator
// ---------------------------------------------------------------------------

func TestNewEnvVarValidator(t *testing.T) {
	v := NewEnvVarValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewEnvVarValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("EnvVar value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validEnvVar()))
	})

	t.Run("EnvVar pointer", func(t *testing.T) {
		record := validEnvVar()
		require.NoError(t, v.Validate(ctx, &record))
	})

	t.Run("slice stops on first invalid record", func(t *testing.T) {
		bad := validEnvVar()
		bad.Key = ""
		err := v.Validate(ctx, []models.EnvVar{validEnvVar(), bad})
		require.ErrorIs(t, err, ErrEmptyKey)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_EnvVar
// ---------------------------------------------------------------------------

func TestValidate_EnvVar(t *testing.T) {
	v := NewEnvVarValidator()
	ctx := context.Background()

	t.Run("empty key", func(t *testing.T) {
		record := validEnvVar()
		record.Key = ""
		require.ErrorIs(t, v.Validate(ctx, record), ErrEmptyKey)
	})

	t.Run("no scopes is allowed", func(t *testing.T) {
		record := validEnvVar()
		record.Scopes = nil
		require.NoError(t, v.Validate(ctx, record))
	})

	t.Run("unknown scope", func(t *testing.T) {
		record := validEnvVar()
		record.Scopes = append(record.Scopes, models.Scope("edge"))
		require.ErrorIs(t, v.Validate(ctx, record), ErrUnknownScope)
	})

	t.Run("scope any passes", func(t *testing.T) {
		record := validEnvVar()
		record.Scopes = []models.Scope{models.ScopeAny}
		require.NoError(t, v.Validate(ctx, record))
	})

	t.Run("no values", func(t *testing.T) {
		record := validEnvVar()
		record.Values = nil
		require.ErrorIs(t, v.Validate(ctx, record), ErrNoValues)
	})

	t.Run("branch value without branch name", func(t *testing.T) {
		record := validEnvVar()
		record.Values = []models.EnvVarValue{{Context: models.ContextBranch, Value: "x"}}
		require.ErrorIs(t, v.Validate(ctx, record), ErrEmptyBranchName)
	})

	t.Run("field scoping skips other checks", func(t *testing.T) {
		record := validEnvVar()
		record.Values = nil
		// проверяем только ключ
		require.NoError(t, v.Validate(ctx, record, FieldKey))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validEnvVar(), "nonexistent")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}
