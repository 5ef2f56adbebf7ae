// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-env-keeper dev proxy handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgResolutionFailed is returned when the remote env store cannot be
	// reached or answers with an unexpected error, so no mapping could be
	// produced for the request.
	MsgResolutionFailed = "env resolution failed"

	// MsgVarNotVisible is returned when a requested variable either does not
	// exist or is filtered out by the effective context and scope.
	MsgVarNotVisible = "env var not visible in this context"

	// MsgNoUpstreamConfigured is returned when a function invocation arrives
	// but the proxy has no functions server URL configured to forward it to.
	MsgNoUpstreamConfigured = "no upstream functions server configured"

	// MsgUpstreamUnreachable is returned when forwarding a function
	// invocation fails before the upstream produces a response.
	MsgUpstreamUnreachable = "functions server unreachable"
)
