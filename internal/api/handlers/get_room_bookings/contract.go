package get_room_bookings

import (
	"context"

	"github.com/resortly/booking-service/internal/domain"
	"github.com/resortly/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	ListRoomBookings(ctx context.Context, req *models.ListRoomBookingsRequest, identity domain.Identity) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
