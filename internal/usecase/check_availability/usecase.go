package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/resortly/booking-service/internal/domain"
)

// Request is the availability query.
type Request struct {
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
}

// Response reports whether the room is free for the requested window.
type Response struct {
	RoomID    int64
	CheckIn   time.Time
	CheckOut  time.Time
	Available bool
}

// UseCase answers the dry-run availability question: does any active
// (pending or confirmed) booking overlap the requested window?
//
// This read is advisory only. The create-booking flow re-runs the same
// check inside its serializable transaction, so a positive answer here
// is never relied on for correctness.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute runs the availability check. Read-only, no side effects.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, fmt.Errorf("%w: check-in and check-out are required", ErrInvalidInput)
	}
	if !req.CheckOut.After(req.CheckIn) {
		return nil, ErrInvalidDateRange
	}

	overlapping, err := uc.bookingRepo.CountOverlapping(ctx, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to count overlapping bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count overlapping bookings: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: room=%d, check_in=%s, check_out=%s, overlapping=%d",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), overlapping)

	return &Response{
		RoomID:    req.RoomID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Available: overlapping == 0,
	}, nil
}
