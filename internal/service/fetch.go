package service

import (
	"errors"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
)

// fetchOutcome classifies the result of one remote scope fetch. Keeping
// the classification separate from the fetch itself makes the
// forbidden-is-empty policy explicit and testable in isolation.
type fetchOutcome int

const (
	// fetchOK: records were fetched (possibly zero of them).
	fetchOK fetchOutcome = iota

	// fetchForbidden: the caller may not read this scope. Recovered
	// locally: the scope contributes an empty layer and the error is never
	// surfaced. Collaborators with partial visibility still get a usable
	// partial merge.
	fetchForbidden

	// fetchFailed: any other failure (network, expired auth, server
	// error). Never recovered; the resolution propagates it unchanged.
	fetchFailed
)

func classifyFetch(err error) fetchOutcome {
	switch {
	case err == nil:
		return fetchOK
	case errors.Is(err, adapter.ErrForbidden):
		return fetchForbidden
	default:
		return fetchFailed
	}
}
