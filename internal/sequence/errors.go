package sequence

import "errors"

var (
	// ErrEmpty is returned when a sequence of size < 1 is requested.
	ErrEmpty = errors.New("sequence size must be at least 1")

	// ErrAllocation is returned when the requested size exceeds the
	// allocation limit. This is the only fatal error of a run.
	ErrAllocation = errors.New("failed to allocate sequence")

	// ErrInvalidRange is returned by FillRandom when min > max.
	ErrInvalidRange = errors.New("minimum must not exceed maximum")

	// ErrZeroDivisor is returned by HasPositiveWithRemainder when k == 0.
	ErrZeroDivisor = errors.New("divisor k must not be zero")
)
