// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-env-keeper/internal/app"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/go-chi/chi/v5"
)

// resolveEnv returns the resolved mapping for the request. Query
// parameters "context" and "scope" override the configured defaults;
// both accept the same forms as the CLI flags ("prod", "branch:x", ...).
func (h *Handler) resolveEnv(w http.ResponseWriter, r *http.Request) {
	h.serveResolved(w, r, "")
}

// resolveEnvVar is the single-key form of resolveEnv.
func (h *Handler) resolveEnvVar(w http.ResponseWriter, r *http.Request) {
	h.serveResolved(w, r, chi.URLParam(r, "key"))
}

func (h *Handler) serveResolved(w http.ResponseWriter, r *http.Request, key string) {
	log := logger.FromRequest(r)

	env, err := h.env.Resolve(r.Context(), h.resolveOptions(r, key))
	if err != nil {
		log.Error().Err(err).Msg("resolve env")
		http.Error(w, app.MsgResolutionFailed, http.StatusBadGateway)
		return
	}

	if key != "" {
		if _, ok := env[key]; !ok {
			http.Error(w, app.MsgVarNotVisible, http.StatusNotFound)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(env); err != nil {
		log.Error().Err(err).Msg("encode resolved env")
	}
}

func (h *Handler) resolveOptions(r *http.Request, key string) service.ResolveOptions {
	reqContext := r.URL.Query().Get("context")
	if reqContext == "" {
		reqContext = h.opts.DefaultContext
	}

	scope := models.Scope(r.URL.Query().Get("scope"))

	return service.ResolveOptions{
		Context:   reqContext,
		Scope:     scope,
		AccountID: h.opts.AccountID,
		SiteID:    h.opts.SiteID,
		LocalEnv:  h.opts.LocalEnv,
		Key:       key,
	}
}
