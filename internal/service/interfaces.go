// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the environment variable resolution core.
//
// The entry point is [EnvService], which layers independently-scoped
// sources of truth — the caller's local mapping, the account-wide remote
// scope and the site-level remote scope — into one flat resolved mapping
// for a requested deploy context and scope. Remote records are fetched
// through [adapter.EnvStore]; everything else is pure computation over
// in-memory values.
package service

import (
	"context"

	"github.com/MKhiriev/go-env-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/env_service_mock.go -package=mock

// EnvService resolves effective environment variable values for a
// deployment context.
type EnvService interface {
	// Resolve produces the effective mapping for opts. Sources are layered
	// in fixed ascending precedence: general, account, add-ons, site,
	// config file — later sources overwrite earlier ones per key. A remote
	// scope the caller is not permitted to read contributes an empty layer;
	// any other fetch failure aborts the resolution. The returned mapping
	// is a fresh value on every call.
	Resolve(ctx context.Context, opts ResolveOptions) (models.ResolvedEnv, error)
}

// ResolveOptions carries one resolution request.
type ResolveOptions struct {
	// Context is the requested deploy context or branch name, in raw form;
	// normalization happens inside the resolution pipeline. Empty means
	// "dev".
	Context string

	// Scope restricts the result to variables visible in one pipeline
	// stage. Empty or models.ScopeAny disables scope filtering.
	Scope models.Scope

	// AccountID selects the account-wide remote scope. When empty, remote
	// fetches are skipped entirely and only local sources participate.
	AccountID string

	// SiteID selects the site-level remote scope; optional.
	SiteID string

	// LocalEnv is the locally-known flat mapping, pre-tagged with sources
	// (general, addons, configFile) by the caller.
	LocalEnv models.ResolvedEnv

	// Key, when set, restricts fetching and the result to a single
	// variable.
	Key string
}
