package appstate

import "errors"

var (
	// ErrInvalidStateTransition is returned when a transition skips a state.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrAlreadyTerminated is returned for any transition after termination.
	ErrAlreadyTerminated = errors.New("application already terminated")
)
