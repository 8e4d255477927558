package models

import (
	"time"

	"github.com/resortly/booking-service/internal/domain"
)

// Request models

// ListUserBookingsRequest asks for a user's booking history.
type ListUserBookingsRequest struct {
	UserID int64
	Status *string
}

// ListRoomBookingsRequest asks for a room's bookings with filtering.
type ListRoomBookingsRequest struct {
	RoomID          int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter converts the request into the repository filter.
func (r *ListRoomBookingsRequest) ToDomainFilter() (domain.RoomBookingsFilter, error) {
	filter := domain.RoomBookingsFilter{
		RoomID:          r.RoomID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return domain.RoomBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse is the outward booking representation.
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

// BookingListResponse is a list of bookings.
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking converts a domain booking into the response model.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID,
		RoomID:         b.RoomID,
		UserID:         b.UserID,
		CheckIn:        b.CheckIn.Format(domain.DateFormat),
		CheckOut:       b.CheckOut.Format(domain.DateFormat),
		NumGuests:      b.NumGuests,
		TotalCostCents: b.TotalCostCents,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList converts a slice of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: out,
		Total:    len(out),
	}
}
