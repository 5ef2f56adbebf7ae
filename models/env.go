// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EnvVar is the raw multi-context record for one variable key, as stored
// remotely. One record carries every candidate value the key has across
// deploy contexts, together with the scopes the key is visible in.
type EnvVar struct {
	// Key is the case-sensitive variable name, unique within one scope.
	Key string `json:"key"`

	// Scopes lists the pipeline stages the variable is visible in.
	Scopes []Scope `json:"scopes"`

	// Values holds the candidate values in server order. At most one value
	// should match a given (context, branch) pair; when several do, the
	// first in sequence wins.
	Values []EnvVarValue `json:"values"`
}

// EnvVarValue is one candidate value of an EnvVar, tagged with the deploy
// context it applies to.
type EnvVarValue struct {
	// ID is the server-side identifier of this value, when known.
	ID string `json:"id,omitempty"`

	// Context is the deploy context tag. ContextBranch values additionally
	// carry the branch name in ContextParameter.
	Context Context `json:"context"`

	// ContextParameter holds the literal branch name for ContextBranch
	// values; empty otherwise.
	ContextParameter string `json:"context_parameter,omitempty"`

	// Value is the variable value itself.
	Value string `json:"value"`
}

// ResolvedVar is the single effective value of one key after context and
// scope filtering, together with its provenance.
type ResolvedVar struct {
	// Value is the effective value in the requested context.
	Value string `json:"value"`

	// Context is the context tag of the value that matched; ContextBranch
	// when the match was branch-specific.
	Context Context `json:"context"`

	// Branch is the branch name of a branch-specific match; empty otherwise.
	Branch string `json:"branch,omitempty"`

	// Scopes carries the scope set of the originating record.
	Scopes []Scope `json:"scopes"`

	// Sources records the origins that supplied this value, most
	// significant first: Sources[0] is the primary origin of Value.
	Sources []Source `json:"sources"`
}

// ResolvedEnv maps variable keys to their resolved records. It is built
// fresh on every resolution request and owned entirely by the caller;
// nothing retains or mutates it afterwards.
type ResolvedEnv map[string]ResolvedVar
