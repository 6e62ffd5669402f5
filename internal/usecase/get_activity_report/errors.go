package get_activity_report

import "errors"

var (
	// ErrInternal is returned for unexpected usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)
