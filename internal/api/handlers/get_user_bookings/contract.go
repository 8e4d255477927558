package get_user_bookings

import (
	"context"

	"github.com/resortly/booking-service/internal/domain"
	"github.com/resortly/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	ListUserBookings(ctx context.Context, req *models.ListUserBookingsRequest, identity domain.Identity) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
