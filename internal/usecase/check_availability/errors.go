package check_availability

import "errors"

var (
	// ErrInvalidDateRange is returned when checkOut is not after checkIn.
	ErrInvalidDateRange = errors.New("check_availability: check-out must be after check-in")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("check_availability: internal error")
)
