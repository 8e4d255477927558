package update_booking_status

import (
	"context"

	"github.com/resortly/booking-service/internal/domain"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, bookingID int64, rawStatus string, identity domain.Identity) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
