package experiment

import "errors"

// Sentinel errors of the sweep driver.
var (
	// ErrUnknownProtocol indicates a protocol id outside Flooding/FFG/GMBC (0/1/2).
	ErrUnknownProtocol = errors.New("experiment: unknown protocol")

	// ErrUnknownSweep indicates a sweep kind outside varying/biased/churn/update.
	ErrUnknownSweep = errors.New("experiment: unknown sweep kind")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("experiment: invalid configuration")

	// ErrHopLimit indicates a trial that did not terminate within MaxHops.
	ErrHopLimit = errors.New("experiment: hop limit exceeded")
)
