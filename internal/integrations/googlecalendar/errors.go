package googlecalendar

import "errors"

var (
	// ErrEventNotFound is returned when the referenced event does not exist.
	ErrEventNotFound = errors.New("googlecalendar client: event not found")

	// ErrUnauthorized is returned when the access token is rejected.
	ErrUnauthorized = errors.New("googlecalendar client: unauthorized")

	// ErrInternal is returned for client-side failures.
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrInvalidResponse is returned when the API answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrServiceDegraded is returned when the calendar API is unreachable
	// and the caller should proceed without a calendar event.
	ErrServiceDegraded = errors.New("googlecalendar unavailable: graceful degradation applied")
)
