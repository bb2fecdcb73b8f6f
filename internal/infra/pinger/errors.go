package pinger

import "errors"

var (
	ErrPingerNotFound = errors.New("pinger not found")

	// ErrPingerAlreadyRegistered is returned when a second pinger uses a taken name.
	ErrPingerAlreadyRegistered = errors.New("pinger already registered")
)
