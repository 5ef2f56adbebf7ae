package service

import "strings"

// contextSynonyms maps accepted shorthand context names to their canonical
// form.
var contextSynonyms = map[string]string{
	"dp":   "deploy-preview",
	"prod": "production",
}

// branchPrefix marks an explicit branch request, e.g. "branch:feat/login".
const branchPrefix = "branch:"

// NormalizeContext canonicalizes a requested context or branch name.
// Shorthand synonyms are expanded and a leading "branch:" prefix is
// stripped. Empty input passes through unchanged. The transform is total:
// any string is a valid input and no error is possible.
func NormalizeContext(context string) string {
	if context == "" {
		return context
	}
	if canonical, ok := contextSynonyms[context]; ok {
		context = canonical
	}
	return strings.TrimPrefix(context, branchPrefix)
}
