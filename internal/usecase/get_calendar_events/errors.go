package get_calendar_events

import "errors"

var (
	// ErrInvalidInput is returned for an out-of-range year or month.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)
