package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/resortly/booking-service/internal/domain"
	bookingRepo "github.com/resortly/booking-service/internal/infra/storage/booking"
	"github.com/resortly/booking-service/internal/service/bookings/models"
)

// Service governs booking lifecycle transitions and read access.
// Every method takes the caller's identity explicitly; nothing here
// reads session state ambiently.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the bookings service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID fetches one booking. Visible to its owner and to admins.
func (s *Service) GetByID(ctx context.Context, id int64, identity domain.Identity) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, identity.UserID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !identity.Owns(booking) && !identity.IsAdmin() {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", identity.UserID, id)
		return nil, ErrForbidden
	}

	return models.FromDomainBooking(booking), nil
}

// ListUserBookings returns a user's booking history, optionally filtered
// by status. Users see their own history; admins see anyone's.
func (s *Service) ListUserBookings(ctx context.Context, req *models.ListUserBookingsRequest, identity domain.Identity) (*models.BookingListResponse, error) {
	s.logger.Info("ListUserBookings: fetching bookings for user=%d, requested by user=%d", req.UserID, identity.UserID)

	if req.UserID != identity.UserID && !identity.IsAdmin() {
		s.logger.Warn("ListUserBookings: access denied for user=%d to history of user=%d", identity.UserID, req.UserID)
		return nil, ErrForbidden
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListUserBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("ListUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ListUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListRoomBookings returns a room's bookings with filtering.
// Back-office surface, admin only.
func (s *Service) ListRoomBookings(ctx context.Context, req *models.ListRoomBookingsRequest, identity domain.Identity) (*models.BookingListResponse, error) {
	s.logger.Info("ListRoomBookings: fetching bookings for room=%d, requested by user=%d", req.RoomID, identity.UserID)

	if !identity.IsAdmin() {
		s.logger.Warn("ListRoomBookings: access denied for user=%d", identity.UserID)
		return nil, ErrForbidden
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListRoomBookings: invalid filter for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByRoom(ctx, filter)
	if err != nil {
		s.logger.Error("ListRoomBookings: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: ListRoomBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRoomBookings: fetched %d bookings for room=%d", len(bookings), req.RoomID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a booking through the restricted path.
//
// The owner may cancel from PENDING or CONFIRMED; admins may cancel on
// behalf of the guest under the same rules. A booking already in a
// terminal state is rejected with ErrAlreadyFinal and left untouched.
func (s *Service) Cancel(ctx context.Context, bookingID int64, identity domain.Identity) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, identity.UserID)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	if !identity.Owns(booking) && !identity.IsAdmin() {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", identity.UserID, bookingID)
		return ErrForbidden
	}

	if !booking.CanBeCancelledByOwner() {
		s.logger.Warn("Cancel: booking id=%d already final, status=%s", bookingID, booking.Status)
		return ErrAlreadyFinal
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus sets a booking's status through the back-office override
// path. Admin only; any of the four known statuses may be set from any
// prior state. The set of accepted values is still closed: anything else
// is rejected with ErrInvalidStatus.
//
// The override does not re-run the availability check; the database
// exclusion constraint is the only guard against reactivating a booking
// into an occupied window, surfaced here as ErrRoomUnavailable.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, rawStatus string, identity domain.Identity) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, rawStatus, identity.UserID)

	if !identity.IsAdmin() {
		s.logger.Warn("UpdateStatus: access denied for user=%d", identity.UserID)
		return ErrForbidden
	}

	newStatus, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", rawStatus, bookingID)
		return ErrInvalidStatus
	}

	// Fetch first so a missing booking reports not-found before any write.
	if _, err := s.getBooking(ctx, "UpdateStatus", bookingID); err != nil {
		return err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrRoomConflict):
			s.logger.Warn("UpdateStatus: booking id=%d reactivation conflicts with an active booking", bookingID)
			return ErrRoomUnavailable
		default:
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
