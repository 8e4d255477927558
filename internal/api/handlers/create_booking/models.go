package create_booking

import (
	"time"

	"github.com/resortly/booking-service/internal/domain"
	createBooking "github.com/resortly/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest is the HTTP request model. The caller's identity
// comes from the verified token, never from the body.
type CreateBookingRequest struct {
	RoomID    int64  `json:"roomId"`
	CheckIn   string `json:"checkIn"`  // "2024-06-01"
	CheckOut  string `json:"checkOut"` // "2024-06-04"
	NumGuests int    `json:"numGuests"`
}

// BookingResponse is the HTTP response model.
type BookingResponse struct {
	ID             int64  `json:"id"`
	RoomID         int64  `json:"roomId"`
	UserID         int64  `json:"userId"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	NumGuests      int    `json:"numGuests"`
	TotalCostCents int64  `json:"totalCostCents"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing both dates.
func (r *CreateBookingRequest) ToUseCaseRequest(identity domain.Identity) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Identity:  identity,
		RoomID:    r.RoomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		NumGuests: r.NumGuests,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		RoomID:         resp.RoomID,
		UserID:         resp.UserID,
		CheckIn:        resp.CheckIn.Format(domain.DateFormat),
		CheckOut:       resp.CheckOut.Format(domain.DateFormat),
		NumGuests:      resp.NumGuests,
		TotalCostCents: resp.TotalCostCents,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
