package adapter

import "errors"

// Sentinel errors mapped from store response status codes by
// mapHTTPError. ErrForbidden carries policy weight: the resolution core
// downgrades it to an empty scope instead of failing the merge.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("scope forbidden")
	ErrNotFound            = errors.New("env var not found")
	ErrInternalServerError = errors.New("internal server error")
)
