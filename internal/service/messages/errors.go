package messages

import "errors"

var (
	// ErrScheduleNotFound is returned when the schedule does not exist.
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrUnknownTemplate is returned for an unrecognized template type.
	ErrUnknownTemplate = errors.New("unknown message template")

	// ErrInternal is returned for unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)
