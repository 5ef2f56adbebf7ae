package service

import "github.com/MKhiriev/go-env-keeper/models"

// layerEnv folds an ordered sequence of source mappings into one, left to
// right, with last-write-wins semantics on key collision. The caller
// decides precedence purely by argument order; layerEnv itself knows
// nothing about sources. The input mappings are never mutated.
func layerEnv(layers ...models.ResolvedEnv) models.ResolvedEnv {
	merged := make(models.ResolvedEnv)
	for _, layer := range layers {
		for key, v := range layer {
			merged[key] = v
		}
	}
	return merged
}
