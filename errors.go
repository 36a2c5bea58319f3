package aspect

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrModelNotFound indicates the scorer model file does not exist.
	ErrModelNotFound = errors.New("aspect: model file not found")

	// ErrInvalidModel indicates the model file exists but is malformed.
	ErrInvalidModel = errors.New("aspect: invalid model format")
)
