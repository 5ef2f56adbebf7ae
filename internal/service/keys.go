package service

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-env-keeper/models"
)

// lessFold is the canonical key ordering: ascending, case-insensitive.
// It never reports 0-like equality for keys that collide only in case, so
// a stable sort keeps their original relative order.
func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// SortedKeys returns the keys of a resolved mapping in canonical order.
// Presentation layers use it to render mappings deterministically.
func SortedKeys(env models.ResolvedEnv) []string {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.SliceStable(keys, func(i, j int) bool { return lessFold(keys[i], keys[j]) })
	return keys
}
