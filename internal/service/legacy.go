package service

import (
	"sort"

	"github.com/MKhiriev/go-env-keeper/models"
)

// FromLegacy lifts a flat key→value mapping into envelope records. Each
// key becomes one record with a single value tagged "all" and the full
// scope set: a flat variable carries no context or scope metadata, so it
// is implicitly visible everywhere. Records come back in canonical key
// order.
func FromLegacy(flat map[string]string) []models.EnvVar {
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.SliceStable(keys, func(i, j int) bool { return lessFold(keys[i], keys[j]) })

	items := make([]models.EnvVar, 0, len(keys))
	for _, key := range keys {
		items = append(items, models.EnvVar{
			Key:    key,
			Scopes: append([]models.Scope(nil), models.AvailableScopes...),
			Values: []models.EnvVarValue{{
				Context: models.ContextAll,
				Value:   flat[key],
			}},
		})
	}
	return items
}

// ToLegacy flattens envelope records into a plain key→value mapping for
// the given context. For each record the first candidate whose effective
// tag — the context parameter when present, the context otherwise —
// equals the normalized context or "all" supplies the value. Keys with no
// applicable candidate or an empty value are dropped silently; absence is
// not an error in the legacy format.
func ToLegacy(items []models.EnvVar, context string) map[string]string {
	context = NormalizeContext(context)

	sorted := append([]models.EnvVar(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool { return lessFold(sorted[i].Key, sorted[j].Key) })

	flat := make(map[string]string, len(sorted))
	for _, item := range sorted {
		for _, v := range item.Values {
			tag := v.ContextParameter
			if tag == "" {
				tag = string(v.Context)
			}
			if tag != context && tag != string(models.ContextAll) {
				continue
			}
			if v.Value != "" {
				flat[item.Key] = v.Value
			}
			break
		}
	}
	return flat
}
