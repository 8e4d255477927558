package create_booking

import "errors"

var (
	// ErrInvalidDateRange is returned when checkOut is not after checkIn.
	ErrInvalidDateRange = errors.New("create_booking: check-out must be after check-in")

	// ErrRoomNotFound is returned when the referenced room does not exist.
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrCapacityExceeded is returned when the guest count is outside
	// [1, room capacity].
	ErrCapacityExceeded = errors.New("create_booking: guest count exceeds room capacity")

	// ErrRoomUnavailable is returned when an overlapping active booking
	// exists, including the case where a concurrent request won the race.
	ErrRoomUnavailable = errors.New("create_booking: room is not available for these dates")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("create_booking: internal error")
)
