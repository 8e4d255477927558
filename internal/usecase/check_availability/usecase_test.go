package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	overlapping int
	err         error
}

func (f *fakeBookingRepo) CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.overlapping, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_Available(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{overlapping: 0}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   7,
		CheckIn:  date(2026, 7, 1),
		CheckOut: date(2026, 7, 4),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, int64(7), resp.RoomID)
}

func TestExecute_Unavailable(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{overlapping: 2}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   7,
		CheckIn:  date(2026, 7, 1),
		CheckOut: date(2026, 7, 4),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:   0,
		CheckIn:  date(2026, 7, 1),
		CheckOut: date(2026, 7, 4),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		RoomID:   7,
		CheckIn:  date(2026, 7, 4),
		CheckOut: date(2026, 7, 4),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{err: errors.New("connection reset")}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:   7,
		CheckIn:  date(2026, 7, 1),
		CheckOut: date(2026, 7, 4),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
