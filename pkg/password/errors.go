package password

import "errors"

// Errors returned by the generator. They are wrapped with call details, so
// compare them with errors.Is.
var (
	// ErrEmptyPool is returned when no character class is selected.
	ErrEmptyPool = errors.New("no character class selected")
	// ErrInvalidLength is returned for a length below 1.
	ErrInvalidLength = errors.New("invalid password length")
	// ErrInvalidCount is returned for a batch count below 1.
	ErrInvalidCount = errors.New("invalid password count")
	// ErrRetryLimitExceeded is returned when no sample covering every selected
	// class was produced within the configured number of attempts.
	ErrRetryLimitExceeded = errors.New("retry limit exceeded")
)
