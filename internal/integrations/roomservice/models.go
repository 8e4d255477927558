package roomservice

import "github.com/resortly/booking-service/internal/domain"

// Room is the room record as served by the room service.
type Room struct {
	ID               int64 `json:"id"`
	Capacity         int   `json:"capacity"`
	NightlyRateCents int64 `json:"nightly_rate_cents"`
}

// ToDomain converts the wire model into the domain room.
func (r *Room) ToDomain() *domain.Room {
	return &domain.Room{
		ID:               r.ID,
		Capacity:         r.Capacity,
		NightlyRateCents: r.NightlyRateCents,
	}
}

// ErrorResponse is the error payload shape of the room service.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
