package domain

// Room is the slice of the room record this service needs, fetched
// read-only from the room service. Treated as immutable for the duration
// of a booking transaction.
type Room struct {
	ID               int64
	Capacity         int
	NightlyRateCents int64
}

// FitsGuests reports whether numGuests is within [1, Capacity].
func (r *Room) FitsGuests(numGuests int) bool {
	return numGuests >= MinGuests && numGuests <= r.Capacity
}
