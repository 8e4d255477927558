package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the given id.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrRoomConflict is returned when the database rejects a write that
	// would produce two overlapping active bookings for one room: either
	// the exclusion constraint fired or a serializable transaction lost
	// the race.
	ErrRoomConflict = errors.New("booking.repository: conflicting active booking")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
