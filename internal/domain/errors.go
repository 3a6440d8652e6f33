package domain

import "errors"

var (
	// ErrUpstreamUnavailable means the backing source of flight events could
	// not be reached or answered with a non-success status.
	ErrUpstreamUnavailable = errors.New("upstream flight source unavailable")

	// ErrMalformedData means a record could not be parsed into a FlightEvent.
	ErrMalformedData = errors.New("malformed flight event data")

	// ErrUnregisteredCommand means no handler was registered for a command.
	// This is a wiring mistake, not a user error.
	ErrUnregisteredCommand = errors.New("unregistered command")
)
