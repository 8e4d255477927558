package create_booking

import (
	"time"

	"github.com/resortly/booking-service/internal/domain"
)

// Request is the booking creation request. Identity comes from the auth
// middleware, never from the request body.
type Request struct {
	Identity  domain.Identity
	RoomID    int64
	CheckIn   time.Time
	CheckOut  time.Time
	NumGuests int
}

// Response is the created booking.
type Response struct {
	ID             int64
	RoomID         int64
	UserID         int64
	CheckIn        time.Time
	CheckOut       time.Time
	NumGuests      int
	TotalCostCents int64
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		RoomID:         b.RoomID,
		UserID:         b.UserID,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		NumGuests:      b.NumGuests,
		TotalCostCents: b.TotalCostCents,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
