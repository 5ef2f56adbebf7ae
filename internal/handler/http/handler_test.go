// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/mock"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T, env service.EnvService, opts Options) *chi.Mux {
	t.Helper()
	h, err := NewHandler(env, opts, logger.Nop())
	require.NoError(t, err)
	return h.Init()
}

// ── GET /api/env ─────────────────────────────────────────────────────────────

func TestResolveEnv_ContextQueryParamNormalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := mock.NewMockEnvService(ctrl)
	env.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts service.ResolveOptions) (models.ResolvedEnv, error) {
			// query-параметр проходит в core как есть; нормализация — забота core
			assert.Equal(t, "prod", opts.Context)
			assert.Equal(t, models.Scope("runtime"), opts.Scope)
			return models.ResolvedEnv{"A": {Value: "1", Context: models.ContextAll}}, nil
		})

	router := newTestHandler(t, env, Options{DefaultContext: "dev"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/env?context=prod&scope=runtime", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ResolvedEnv
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "1", got["A"].Value)
}

func TestResolveEnv_DefaultContextUsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := mock.NewMockEnvService(ctrl)
	env.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts service.ResolveOptions) (models.ResolvedEnv, error) {
			assert.Equal(t, "deploy-preview", opts.Context)
			return models.ResolvedEnv{}, nil
		})

	router := newTestHandler(t, env, Options{DefaultContext: "deploy-preview"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/env", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResolveEnv_ResolutionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := mock.NewMockEnvService(ctrl)
	env.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	router := newTestHandler(t, env, Options{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/env", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestResolveEnvVar_NotVisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := mock.NewMockEnvService(ctrl)
	env.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts service.ResolveOptions) (models.ResolvedEnv, error) {
			assert.Equal(t, "HIDDEN", opts.Key)
			return models.ResolvedEnv{}, nil
		})

	router := newTestHandler(t, env, Options{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/env/HIDDEN", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolveEnv_TraceIDHeaderSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := mock.NewMockEnvService(ctrl)
	env.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(models.ResolvedEnv{}, nil)

	router := newTestHandler(t, env, Options{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/env", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

// ── /functions/* forwarding ──────────────────────────────────────────────────

func TestForwardFunction_InjectsEnvAndRelaysResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hello", r.URL.Path)
		assert.Equal(t, "world", r.Header.Get("X-Env-GREETING_TARGET"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"in":1}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"out":2}`))
	}))
	defer upstream.Close()

	env := mock.NewMockEnvService(ctrl)
	env.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts service.ResolveOptions) (models.ResolvedEnv, error) {
			// инвокации всегда резолвятся в скоупе functions
			assert.Equal(t, models.ScopeFunctions, opts.Scope)
			return models.ResolvedEnv{
				"GREETING_TARGET": {Value: "world", Context: models.ContextAll},
			}, nil
		})

	router := newTestHandler(t, env, Options{UpstreamURL: upstream.URL})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/functions/hello", strings.NewReader(`{"in":1}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"out":2}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestForwardFunction_NoUpstreamConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := mock.NewMockEnvService(ctrl)

	router := newTestHandler(t, env, Options{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/functions/hello", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestForwardFunction_UpstreamUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := mock.NewMockEnvService(ctrl)
	env.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(models.ResolvedEnv{}, nil)

	// закрытый сервер: dial гарантированно падает
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	router := newTestHandler(t, env, Options{UpstreamURL: upstream.URL})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/functions/hello", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

// ── headerSafe ───────────────────────────────────────────────────────────────

func TestHeaderSafe(t *testing.T) {
	assert.Equal(t, "DB_URL", headerSafe("DB_URL"))
	assert.Equal(t, "weird-key", headerSafe("weird key"))
}
