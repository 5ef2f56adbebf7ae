// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Context identifies the deploy phase an environment variable value
// applies to. A value that is not one of the enumerated contexts is
// treated as a literal branch name by the resolution logic.
type Context string

const (
	// ContextAll marks a value as applicable in every deploy context.
	ContextAll Context = "all"

	// ContextProduction marks a value as applicable to production deploys.
	ContextProduction Context = "production"

	// ContextDeployPreview marks a value as applicable to deploy previews
	// built from pull/merge requests.
	ContextDeployPreview Context = "deploy-preview"

	// ContextBranchDeploy marks a value as applicable to deploys of any
	// non-production branch.
	ContextBranchDeploy Context = "branch-deploy"

	// ContextDev marks a value as applicable to local development.
	ContextDev Context = "dev"

	// ContextBranch marks a value as applicable to one specific branch.
	// The branch name is carried separately in EnvVarValue.ContextParameter.
	ContextBranch Context = "branch"
)

// AvailableContexts enumerates the deploy contexts a resolution request may
// target. Initialized once at startup and never mutated.
var AvailableContexts = []Context{
	ContextAll,
	ContextProduction,
	ContextDeployPreview,
	ContextBranchDeploy,
	ContextDev,
}

// IsEnumeratedContext reports whether s is one of the contexts listed in
// AvailableContexts. Anything else is interpreted as a branch name.
func IsEnumeratedContext(s string) bool {
	for _, c := range AvailableContexts {
		if string(c) == s {
			return true
		}
	}
	return false
}
