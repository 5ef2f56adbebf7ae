// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes the resolution core over HTTP for local
// development. Two surfaces exist: a read-only endpoint returning the
// resolved mapping for a requested context/scope, and a forwarding
// endpoint that proxies a function invocation to the local functions
// server with the resolved environment attached, streaming the
// invocation's result back to the caller.
//
// The handlers carry no resolution semantics of their own: every request
// goes through [service.EnvService] and nothing is cached between
// requests.
package http

import (
	"net/url"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/go-resty/resty/v2"
)

// Options configures a Handler.
type Options struct {
	// DefaultContext is used when a request carries no context query
	// parameter. Empty means "dev".
	DefaultContext string

	// AccountID and SiteID address the remote scopes.
	AccountID string
	SiteID    string

	// LocalEnv is the locally-known mapping layered under the remote
	// scopes on every request.
	LocalEnv models.ResolvedEnv

	// UpstreamURL is the base URL of the functions server invocations are
	// forwarded to. The /functions endpoints 502 when it is unset.
	UpstreamURL string

	// UpstreamTimeout bounds one forwarded invocation.
	UpstreamTimeout time.Duration
}

// Handler bundles the HTTP handlers of the dev proxy.
type Handler struct {
	env      service.EnvService
	opts     Options
	upstream *url.URL
	fwd      *resty.Client
	logger   *logger.Logger
}

// NewHandler builds a Handler on top of env. An unparsable upstream URL
// is reported immediately rather than on first invocation.
func NewHandler(env service.EnvService, opts Options, log *logger.Logger) (*Handler, error) {
	if log == nil {
		log = logger.Nop()
	}
	if opts.UpstreamTimeout <= 0 {
		opts.UpstreamTimeout = 30 * time.Second
	}

	h := &Handler{env: env, opts: opts, logger: log}

	if opts.UpstreamURL != "" {
		upstream, err := url.Parse(opts.UpstreamURL)
		if err != nil {
			return nil, err
		}
		h.upstream = upstream
		h.fwd = resty.New().
			SetBaseURL(upstream.String()).
			SetTimeout(opts.UpstreamTimeout).
			SetDoNotParseResponse(true)
	}

	return h, nil
}
