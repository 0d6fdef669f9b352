package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEventFull is returned when an event has reached its capacity.
	ErrEventFull = errors.New("event is full")
	// ErrAlreadyRegistered is returned when the email already holds a
	// registration for the event.
	ErrAlreadyRegistered = errors.New("already registered for this event")
	// ErrInvalidInput is returned for business-rule input violations that
	// are not caught by schema validation.
	ErrInvalidInput = errors.New("invalid input")
)
