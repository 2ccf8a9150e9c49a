package service

import "errors"

// ValidationError carries the exact user-facing message for a malformed
// schedule payload. Nothing is written when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func errValidation(msg string) error { return &ValidationError{Message: msg} }

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ErrOpenVersionConflict: two concurrent future-only edits raced; the loser
// hits the one-open-version-per-group unique index.
var ErrOpenVersionConflict = errors.New("another open schedule version already exists for this group")
