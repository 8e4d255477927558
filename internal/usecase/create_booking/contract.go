package create_booking

import (
	"context"
	"time"

	"github.com/resortly/booking-service/internal/domain"
)

// BookingRepository is the persistence surface this use case needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int, error)
}

// RoomServiceClient resolves room records from the room service.
type RoomServiceClient interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
}

// TransactionManager runs the availability check and the insert as one
// atomic unit.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
