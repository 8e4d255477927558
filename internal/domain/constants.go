package domain

// Date format for booking dates in API payloads and logs.
const DateFormat = "2006-01-02"

// Business validation constants
const (
	MinGuests = 1
	MinNights = 1
)

// ActiveStatuses are the statuses that count toward room availability.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses are the statuses a booking can never leave through the
// owner path.
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}
