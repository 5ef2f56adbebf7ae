package service

import (
	"sort"

	"github.com/MKhiriev/go-env-keeper/models"
)

// formatEnvVars filters raw envelope records down to those visible in the
// requested context and scope, and projects each survivor into a single
// resolved record stamped with source.
//
// The pipeline runs in a fixed order: context match, scope filter,
// case-insensitive key sort, projection. The stages are independent
// filters, so the order only pins down determinism.
func formatEnvVars(context string, items []models.EnvVar, scope models.Scope, source models.Source) models.ResolvedEnv {
	if context == "" {
		context = string(models.ContextDev)
	}
	if scope == "" {
		scope = models.ScopeAny
	}
	context = NormalizeContext(context)

	type match struct {
		item  models.EnvVar
		value models.EnvVarValue
	}

	matches := make([]match, 0, len(items))
	for _, item := range items {
		value, ok := matchValue(item.Values, context)
		if !ok {
			continue
		}
		if scope != models.ScopeAny && !scopeVisible(item.Scopes, scope) {
			continue
		}
		matches = append(matches, match{item: item, value: value})
	}

	// Keys that differ only in case keep their relative order; byte-identical
	// keys are a data error upstream and no order is promised for them.
	sort.SliceStable(matches, func(i, j int) bool {
		return lessFold(matches[i].item.Key, matches[j].item.Key)
	})

	env := make(models.ResolvedEnv, len(matches))
	for _, m := range matches {
		env[m.item.Key] = models.ResolvedVar{
			Value:   m.value.Value,
			Context: m.value.Context,
			Branch:  m.value.ContextParameter,
			Scopes:  m.item.Scopes,
			Sources: []models.Source{source},
		}
	}
	return env
}

func scopeVisible(scopes []models.Scope, scope models.Scope) bool {
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}
