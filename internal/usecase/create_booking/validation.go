package create_booking

import (
	"fmt"

	"github.com/resortly/booking-service/internal/domain"
)

// validateRequest validates the shape of the request.
// Guest count is deliberately not checked here: it is validated against
// the room's capacity after the room is fetched, so an out-of-range
// count reports ErrCapacityExceeded, not ErrInvalidInput.
func validateRequest(req *Request) error {
	if req.Identity.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out are required", ErrInvalidInput)
	}

	return nil
}

// validateDateRange enforces checkOut > checkIn.
func validateDateRange(req *Request) error {
	if !req.CheckOut.After(req.CheckIn) {
		return ErrInvalidDateRange
	}
	return nil
}

// validateCapacity enforces 1 <= numGuests <= room capacity.
func validateCapacity(room *domain.Room, numGuests int) error {
	if !room.FitsGuests(numGuests) {
		return fmt.Errorf("%w: room %d holds at most %d guests, requested %d",
			ErrCapacityExceeded, room.ID, room.Capacity, numGuests)
	}
	return nil
}
