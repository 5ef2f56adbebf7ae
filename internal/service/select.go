package service

import "github.com/MKhiriev/go-env-keeper/models"

// matchValue picks the candidate value applicable to the normalized
// context string. Values are scanned in server order and the first
// applicable one wins; "most specific" never beats "first listed".
//
// When context is one of the enumerated deploy contexts, a value applies
// if it is tagged with that context or with "all". Otherwise context is a
// branch name and a value applies if it is tagged "branch" with a matching
// context parameter, again with "all" as the universal fallback.
//
// The second return is false when no candidate applies. That is not an
// error: it means the key is simply not visible in the requested context.
func matchValue(values []models.EnvVarValue, context string) (models.EnvVarValue, bool) {
	branch := !models.IsEnumeratedContext(context)

	for _, v := range values {
		if v.Context == models.ContextAll {
			return v, true
		}
		if branch {
			if v.Context == models.ContextBranch && v.ContextParameter == context {
				return v, true
			}
			continue
		}
		if string(v.Context) == context {
			return v, true
		}
	}

	return models.EnvVarValue{}, false
}
