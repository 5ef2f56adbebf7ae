// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/app"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/go-chi/chi/v5"
)

// envHeaderPrefix prefixes the resolved variables attached to a
// forwarded invocation. The functions server strips the prefix and
// exposes the variables to the invoked function.
const envHeaderPrefix = "X-Env-"

// forwardFunction resolves the environment in the functions scope,
// forwards the invocation to the upstream functions server with the
// resolved variables attached as headers, and relays the invocation's
// result (status, headers, body) back verbatim. The proxy never inspects
// the result; it is glue around the resolution core.
func (h *Handler) forwardFunction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.fwd == nil {
		http.Error(w, app.MsgNoUpstreamConfigured, http.StatusBadGateway)
		return
	}

	env, err := h.env.Resolve(r.Context(), service.ResolveOptions{
		Context:   h.opts.DefaultContext,
		Scope:     models.ScopeFunctions,
		AccountID: h.opts.AccountID,
		SiteID:    h.opts.SiteID,
		LocalEnv:  h.opts.LocalEnv,
	})
	if err != nil {
		log.Error().Err(err).Msg("resolve env for function invocation")
		http.Error(w, app.MsgResolutionFailed, http.StatusBadGateway)
		return
	}

	req := h.fwd.R().
		SetContext(r.Context()).
		SetHeaderMultiValues(r.Header).
		SetBody(r.Body)
	for _, key := range service.SortedKeys(env) {
		req.SetHeader(envHeaderPrefix+headerSafe(key), env[key].Value)
	}

	name := chi.URLParam(r, "*")
	resp, err := req.Execute(r.Method, "/"+name)
	if err != nil {
		log.Error().Err(err).Str("function", name).Msg("forward function invocation")
		http.Error(w, app.MsgUpstreamUnreachable, http.StatusBadGateway)
		return
	}
	defer resp.RawBody().Close()

	for header, values := range resp.RawResponse.Header {
		for _, v := range values {
			w.Header().Add(header, v)
		}
	}
	w.WriteHeader(resp.StatusCode())
	if _, err = io.Copy(w, resp.RawBody()); err != nil {
		log.Error().Err(err).Str("function", name).Msg("relay function result")
	}
}

// headerSafe rewrites an env key into a legal header name. Keys are
// conventionally SCREAMING_SNAKE; underscores survive in header names,
// so this only guards against exotic characters.
func headerSafe(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '-'
		}
	}, key)
}
