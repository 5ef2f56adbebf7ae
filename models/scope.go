// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Scope identifies the pipeline stage an environment variable is visible
// in. The wildcard ScopeAny disables scope filtering entirely.
type Scope string

const (
	// ScopeBuilds makes a variable visible while the site is being built.
	ScopeBuilds Scope = "builds"

	// ScopeFunctions makes a variable visible to serverless functions.
	ScopeFunctions Scope = "functions"

	// ScopeRuntime makes a variable visible to the serving runtime.
	ScopeRuntime Scope = "runtime"

	// ScopePostProcessing makes a variable visible to post-processing steps
	// that run after the build (asset optimization, snippet injection).
	ScopePostProcessing Scope = "post_processing"

	// ScopeAny is the wildcard used on resolution requests; it means
	// "do not filter by scope" and is never stored on a variable.
	ScopeAny Scope = "any"
)

// AvailableScopes enumerates the storable scopes in their canonical order.
// Initialized once at startup and never mutated. The order is meaningful:
// HumanizeScopes renders labels in this order regardless of input order.
var AvailableScopes = []Scope{
	ScopeBuilds,
	ScopeFunctions,
	ScopeRuntime,
	ScopePostProcessing,
}

// Label returns the human-readable form of a scope.
func (s Scope) Label() string {
	switch s {
	case ScopeBuilds:
		return "Builds"
	case ScopeFunctions:
		return "Functions"
	case ScopeRuntime:
		return "Runtime"
	case ScopePostProcessing:
		return "Post processing"
	case ScopeAny:
		return "Any"
	default:
		return string(s)
	}
}

// HumanizeScopes renders a scope set as a display string.
//
// A nil or empty set means the variable carries no scope metadata at all
// (a legacy variable read from the config file) and renders as
// "Builds, Post processing" — the stages such variables participate in.
// A set covering every available scope renders as "All". Any other set
// renders as comma-joined labels in AvailableScopes order.
func HumanizeScopes(scopes []Scope) string {
	if len(scopes) == 0 {
		return ScopeBuilds.Label() + ", " + ScopePostProcessing.Label()
	}

	present := make(map[Scope]bool, len(scopes))
	for _, s := range scopes {
		present[s] = true
	}

	all := true
	labels := make([]string, 0, len(AvailableScopes))
	for _, s := range AvailableScopes {
		if present[s] {
			labels = append(labels, s.Label())
		} else {
			all = false
		}
	}
	if all {
		return "All"
	}

	return strings.Join(labels, ", ")
}
