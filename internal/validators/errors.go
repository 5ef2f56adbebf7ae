package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyKey        = errors.New("key is required")
	ErrNoValues        = errors.New("values list cannot be empty")
	ErrUnknownScope    = errors.New("unknown scope")
	ErrEmptyBranchName = errors.New("branch value without a branch name")
)
