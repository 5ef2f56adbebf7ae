// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// environment variable store.
//
// The primary abstraction is [EnvStore], which decouples the resolution
// core from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPEnvStore]) that maps response status codes to
// the sentinel errors in errors.go, so callers can apply policy with
// [errors.Is] (the resolution core treats [ErrForbidden] as "scope not
// visible" and everything else as fatal).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-env-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/env_store_mock.go -package=mock

// EnvStore is the remote source of truth for envelope records. It is the
// only external resource the resolution core touches: remote, fallible,
// and queried fresh on every resolution. Implementations own transport
// concerns — serialization, auth headers, timeouts, error mapping — and
// honor ctx cancellation.
type EnvStore interface {
	// GetEnvVar fetches the envelope record for a single key. An empty
	// siteID addresses the account-wide scope; a non-empty one narrows the
	// lookup to that site. Fails with [ErrForbidden] (wrapped) when the
	// caller may not read the scope.
	GetEnvVar(ctx context.Context, accountID, key, siteID string) (models.EnvVar, error)

	// GetEnvVars fetches every envelope record visible in the addressed
	// scope. Same scope addressing and error contract as GetEnvVar.
	GetEnvVars(ctx context.Context, accountID, siteID string) ([]models.EnvVar, error)
}
