package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the lifecycle status of a booking.
// Only the four declared values are valid; everything entering the system
// goes through ParseBookingStatus so unknown values never reach storage.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// ParseBookingStatus converts a raw string into a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// Booking represents a room reservation.
// TotalCostCents and NumGuests are fixed at creation time and never updated.
type Booking struct {
	ID             int64
	RoomID         int64
	UserID         int64
	CheckIn        time.Time
	CheckOut       time.Time
	NumGuests      int
	TotalCostCents int64
	Status         BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts toward room availability.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if the booking reached a final state.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// CanBeCancelledByOwner returns true if the owner-cancellation path may
// still cancel the booking.
func (b *Booking) CanBeCancelledByOwner() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Overlaps reports whether the booking's stay intersects [checkIn, checkOut).
// Intervals are half-open: a checkout and a check-in on the same day do
// not conflict.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}

// RoomBookingsFilter filters the per-room booking listing.
type RoomBookingsFilter struct {
	RoomID          int64
	StartDate       *time.Time     // optional, lower bound on check_in
	EndDate         *time.Time     // optional, upper bound on check_in
	Status          *BookingStatus // optional exact status
	IncludeInactive bool           // include cancelled/completed bookings
}
