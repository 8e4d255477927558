package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/resortly/booking-service/internal/domain"
	bookingRepo "github.com/resortly/booking-service/internal/infra/storage/booking"
	roomClient "github.com/resortly/booking-service/internal/integrations/roomservice"
)

// UseCase creates bookings.
//
// The availability check and the insert run inside one SERIALIZABLE
// transaction: two concurrent requests for overlapping dates on the same
// room cannot both observe the window as free and both commit. The
// losing request surfaces as ErrRoomUnavailable and may simply be
// resubmitted by the caller.
type UseCase struct {
	bookingRepo BookingRepository
	roomClient  RoomServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates the booking creation use case.
func NewUseCase(
	bookingRepo BookingRepository,
	roomClient RoomServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomClient:  roomClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute validates the request, prices the stay and persists the
// booking in PENDING state. Validation failures are reported before any
// write; there are no partial writes.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d, check_in=%s, check_out=%s, guests=%d",
		req.Identity.UserID, req.RoomID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.NumGuests)

	// 1. Shape validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Date ordering
	if err := validateDateRange(req); err != nil {
		uc.logger.Warn("CreateBooking: invalid date range: check_in=%s, check_out=%s",
			req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Room lookup
	room, err := uc.roomClient.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomClient.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Capacity
	if err := validateCapacity(room, req.NumGuests); err != nil {
		uc.logger.Warn("CreateBooking: capacity check failed: room=%d, capacity=%d, guests=%d",
			room.ID, room.Capacity, req.NumGuests)
		return nil, err
	}

	var result *domain.Booking

	// 5. Availability check + insert, atomically
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.CountOverlapping(txCtx, req.RoomID, req.CheckIn, req.CheckOut)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to count overlapping bookings: %v", ErrInternal, err)
		}

		if overlapping > 0 {
			uc.logger.Warn("CreateBooking: room=%d unavailable, %d overlapping bookings",
				req.RoomID, overlapping)
			return ErrRoomUnavailable
		}

		booking := &domain.Booking{
			RoomID:         req.RoomID,
			UserID:         req.Identity.UserID,
			CheckIn:        req.CheckIn,
			CheckOut:       req.CheckOut,
			NumGuests:      req.NumGuests,
			TotalCostCents: domain.TotalCost(room.NightlyRateCents, req.CheckIn, req.CheckOut),
			Status:         domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if bookingRepo.IsConflict(err) {
				uc.logger.Warn("CreateBooking: room=%d conflict on insert", req.RoomID)
				return ErrRoomUnavailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// A serialization failure at commit time means a concurrent
		// request took the window first.
		if bookingRepo.IsConflict(err) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%d cents (%d nights)",
		result.ID, result.TotalCostCents, domain.Nights(result.CheckIn, result.CheckOut))

	return fromDomain(result), nil
}
