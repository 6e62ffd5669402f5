package create_schedule

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)
