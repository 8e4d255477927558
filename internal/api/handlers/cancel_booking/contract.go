package cancel_booking

import (
	"context"

	"github.com/resortly/booking-service/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID int64, identity domain.Identity) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
