// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore создаёт httpEnvStore, направленный на тестовый сервер
func newTestStore(t *testing.T, serverURL string) EnvStore {
	t.Helper()
	return NewHTTPEnvStore(EnvStoreConfig{
		BaseURL: serverURL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	}, logger.Nop())
}

// ── GetEnvVars ───────────────────────────────────────────────────────────────

func TestGetEnvVars_AccountScope(t *testing.T) {
	items := []models.EnvVar{{
		Key:    "API_KEY",
		Scopes: []models.Scope{models.ScopeBuilds, models.ScopeFunctions},
		Values: []models.EnvVarValue{{Context: models.ContextAll, Value: "secret"}},
	}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/accounts/acc-1/env", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("site_id"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(items))
	}))
	defer srv.Close()

	store := newTestStore(t, srv.URL)
	got, err := store.GetEnvVars(context.Background(), "acc-1", "")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "API_KEY", got[0].Key)
	assert.Equal(t, "secret", got[0].Values[0].Value)
}

func TestGetEnvVars_SiteScopePassesQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "site-9", r.URL.Query().Get("site_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	store := newTestStore(t, srv.URL)
	got, err := store.GetEnvVars(context.Background(), "acc-1", "site-9")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetEnvVars_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("no access to account env"))
	}))
	defer srv.Close()

	store := newTestStore(t, srv.URL)
	_, err := store.GetEnvVars(context.Background(), "acc-1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetEnvVars_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newTestStore(t, srv.URL)
	_, err := store.GetEnvVars(context.Background(), "acc-1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetEnvVars_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	store := newTestStore(t, srv.URL)
	_, err := store.GetEnvVars(context.Background(), "acc-1", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode env vars response")
}

// ── GetEnvVar ────────────────────────────────────────────────────────────────

func TestGetEnvVar_SingleKey(t *testing.T) {
	item := models.EnvVar{
		Key:    "DB_URL",
		Scopes: []models.Scope{models.ScopeRuntime},
		Values: []models.EnvVarValue{{Context: models.ContextProduction, Value: "postgres://prod"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/acc-1/env/DB_URL", r.URL.Path)
		assert.Equal(t, "site-9", r.URL.Query().Get("site_id"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(item))
	}))
	defer srv.Close()

	store := newTestStore(t, srv.URL)
	got, err := store.GetEnvVar(context.Background(), "acc-1", "DB_URL", "site-9")

	require.NoError(t, err)
	assert.Equal(t, item.Key, got.Key)
	assert.Equal(t, "postgres://prod", got.Values[0].Value)
}

func TestGetEnvVar_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	store := newTestStore(t, srv.URL)
	_, err := store.GetEnvVar(context.Background(), "acc-1", "MISSING", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── AccountIDFromToken ───────────────────────────────────────────────────────

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestAccountIDFromToken_Subject(t *testing.T) {
	token := signedTestToken(t, jwt.MapClaims{"sub": "acc-42"})

	got, err := AccountIDFromToken(token)

	require.NoError(t, err)
	assert.Equal(t, "acc-42", got)
}

func TestAccountIDFromToken_NoSubject(t *testing.T) {
	token := signedTestToken(t, jwt.MapClaims{"aud": "envkeeper"})

	_, err := AccountIDFromToken(token)

	require.Error(t, err)
}

func TestAccountIDFromToken_Garbage(t *testing.T) {
	_, err := AccountIDFromToken("not-a-jwt")
	require.Error(t, err)
}
