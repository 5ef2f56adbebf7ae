package service

import "github.com/MKhiriev/go-env-keeper/models"

// filterBySource returns the sub-mapping of env whose primary source
// (Sources[0]) equals source. Entries without provenance are skipped.
// An empty result is valid and common.
func filterBySource(env models.ResolvedEnv, source models.Source) models.ResolvedEnv {
	out := make(models.ResolvedEnv)
	for key, v := range env {
		if len(v.Sources) > 0 && v.Sources[0] == source {
			out[key] = v
		}
	}
	return out
}
