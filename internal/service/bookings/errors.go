package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrForbidden is returned when the caller is authenticated but not
	// entitled to the requested operation on this booking.
	ErrForbidden = errors.New("operation not permitted for this caller")

	// ErrAlreadyFinal is returned when the owner path tries to mutate a
	// booking that already reached a terminal state. The booking is left
	// untouched.
	ErrAlreadyFinal = errors.New("booking is already in a final state")

	// ErrInvalidStatus is returned when an admin supplies a status value
	// outside the known set.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrRoomUnavailable is returned when a status override would
	// reactivate a booking into a window another active booking holds.
	ErrRoomUnavailable = errors.New("room is not available for these dates")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("bookings service: internal error")
)
