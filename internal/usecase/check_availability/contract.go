package check_availability

import (
	"context"
	"time"
)

// BookingRepository is the read surface this use case needs.
type BookingRepository interface {
	CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int, error)
}

// Logger is the logging surface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
