package domain

import "time"

// Nights returns the number of billable nights between checkIn and
// checkOut: the floored calendar-day difference, never less than one.
// A stay always bills at least one night.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < MinNights {
		return MinNights
	}
	return nights
}

// TotalCost computes the stay cost in minor currency units.
// Integer arithmetic only; the result is fixed at creation time and is
// never recomputed for an existing booking.
func TotalCost(nightlyRateCents int64, checkIn, checkOut time.Time) int64 {
	return int64(Nights(checkIn, checkOut)) * nightlyRateCents
}
