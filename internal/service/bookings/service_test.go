package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resortly/booking-service/internal/domain"
	bookingRepo "github.com/resortly/booking-service/internal/infra/storage/booking"
	"github.com/resortly/booking-service/internal/service/bookings/models"
	"github.com/resortly/booking-service/pkg/ptr"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking

	listByUser []*domain.Booking
	listByRoom []*domain.Booking
	listErr    error

	updateErr     error
	updatedID     int64
	updatedStatus domain.BookingStatus
	updateCalls   int

	lastUserFilter *domain.BookingStatus
	lastRoomFilter domain.RoomBookingsFilter
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastUserFilter = status
	return f.listByUser, f.listErr
}

func (f *fakeRepo) ListByRoom(ctx context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	f.lastRoomFilter = filter
	return f.listByRoom, f.listErr
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var (
	owner    = domain.Identity{UserID: 42, Role: domain.RoleGuest}
	stranger = domain.Identity{UserID: 7, Role: domain.RoleGuest}
	admin    = domain.Identity{UserID: 1, Role: domain.RoleAdmin}
)

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:             10,
		RoomID:         3,
		UserID:         42,
		CheckIn:        time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		NumGuests:      2,
		TotalCostCents: 30000,
		Status:         status,
	}
}

func newService(repo *fakeRepo) *Service {
	return NewService(repo, noopLogger{})
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{10: testBooking(domain.StatusConfirmed)}}
	svc := newService(repo)

	t.Run("owner sees own booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 10, owner)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("admin sees any booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 10, admin)
		require.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 10, stranger)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99, owner)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestListUserBookings(t *testing.T) {
	t.Run("user lists own history", func(t *testing.T) {
		repo := &fakeRepo{listByUser: []*domain.Booking{testBooking(domain.StatusCancelled)}}
		svc := newService(repo)

		resp, err := svc.ListUserBookings(context.Background(), &models.ListUserBookingsRequest{UserID: 42}, owner)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Nil(t, repo.lastUserFilter)
	})

	t.Run("status filter is parsed", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newService(repo)

		_, err := svc.ListUserBookings(context.Background(), &models.ListUserBookingsRequest{
			UserID: 42,
			Status: ptr.Ptr("confirmed"),
		}, owner)
		require.NoError(t, err)
		require.NotNil(t, repo.lastUserFilter)
		assert.Equal(t, domain.StatusConfirmed, *repo.lastUserFilter)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := newService(&fakeRepo{})

		_, err := svc.ListUserBookings(context.Background(), &models.ListUserBookingsRequest{
			UserID: 42,
			Status: ptr.Ptr("archived"),
		}, owner)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("stranger cannot list another user's history", func(t *testing.T) {
		svc := newService(&fakeRepo{})

		_, err := svc.ListUserBookings(context.Background(), &models.ListUserBookingsRequest{UserID: 42}, stranger)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin can list anyone's history", func(t *testing.T) {
		svc := newService(&fakeRepo{})

		_, err := svc.ListUserBookings(context.Background(), &models.ListUserBookingsRequest{UserID: 42}, admin)
		require.NoError(t, err)
	})
}

func TestListRoomBookings(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		svc := newService(&fakeRepo{})

		_, err := svc.ListRoomBookings(context.Background(), &models.ListRoomBookingsRequest{RoomID: 3}, owner)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("filter is passed through", func(t *testing.T) {
		repo := &fakeRepo{listByRoom: []*domain.Booking{testBooking(domain.StatusPending)}}
		svc := newService(repo)

		start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		resp, err := svc.ListRoomBookings(context.Background(), &models.ListRoomBookingsRequest{
			RoomID:          3,
			StartDate:       &start,
			Status:          ptr.Ptr("pending"),
			IncludeInactive: true,
		}, admin)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(3), repo.lastRoomFilter.RoomID)
		require.NotNil(t, repo.lastRoomFilter.Status)
		assert.Equal(t, domain.StatusPending, *repo.lastRoomFilter.Status)
		assert.True(t, repo.lastRoomFilter.IncludeInactive)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		svc := newService(&fakeRepo{})

		_, err := svc.ListRoomBookings(context.Background(), &models.ListRoomBookingsRequest{
			RoomID: 3,
			Status: ptr.Ptr("archived"),
		}, admin)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels pending booking", func(t *testing.T) {
		repo := &fakeRepo{bookings: map[int64]*domain.Booking{10: testBooking(domain.StatusPending)}}
		svc := newService(repo)

		err := svc.Cancel(context.Background(), 10, owner)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, repo.updatedStatus)
		assert.Equal(t, int64(10), repo.updatedID)
	})

	t.Run("owner cancels confirmed booking", func(t *testing.T) {
		repo := &fakeRepo{bookings: map[int64]*domain.Booking{10: testBooking(domain.StatusConfirmed)}}
		svc := newService(repo)

		require.NoError(t, svc.Cancel(context.Background(), 10, owner))
	})

	t.Run("admin cancels on behalf of guest", func(t *testing.T) {
		repo := &fakeRepo{bookings: map[int64]*domain.Booking{10: testBooking(domain.StatusPending)}}
		svc := newService(repo)

		require.NoError(t, svc.Cancel(context.Background(), 10, admin))
	})

	t.Run("stranger is rejected before state is inspected", func(t *testing.T) {
		repo := &fakeRepo{bookings: map[int64]*domain.Booking{10: testBooking(domain.StatusPending)}}
		svc := newService(repo)

		err := svc.Cancel(context.Background(), 10, stranger)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("terminal booking stays untouched", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
			repo := &fakeRepo{bookings: map[int64]*domain.Booking{10: testBooking(status)}}
			svc := newService(repo)

			err := svc.Cancel(context.Background(), 10, owner)
			assert.ErrorIs(t, err, ErrAlreadyFinal)
			assert.Zero(t, repo.updateCalls)
		}
	})

	t.Run("missing booking", func(t *testing.T) {
		svc := newService(&fakeRepo{bookings: map[int64]*domain.Booking{}})

		err := svc.Cancel(context.Background(), 99, owner)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("admin sets any status from any state", func(t *testing.T) {
		// The override path ignores transition rules, including leaving
		// a terminal state.
		repo := &fakeRepo{bookings: map[int64]*domain.Booking{10: testBooking(domain.StatusCancelled)}}
		svc := newService(repo)

		err := svc.UpdateStatus(context.Background(), 10, "confirmed", admin)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		repo := &fakeRepo{bookings: map[int64]*domain.Booking{10: testBooking(domain.StatusPending)}}
		svc := newService(repo)

		err := svc.UpdateStatus(context.Background(), 10, "confirmed", owner)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		repo := &fakeRepo{bookings: map[int64]*domain.Booking{10: testBooking(domain.StatusPending)}}
		svc := newService(repo)

		err := svc.UpdateStatus(context.Background(), 10, "archived", admin)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc := newService(&fakeRepo{bookings: map[int64]*domain.Booking{}})

		err := svc.UpdateStatus(context.Background(), 99, "confirmed", admin)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("reactivation into an occupied window", func(t *testing.T) {
		repo := &fakeRepo{
			bookings:  map[int64]*domain.Booking{10: testBooking(domain.StatusCancelled)},
			updateErr: bookingRepo.ErrRoomConflict,
		}
		svc := newService(repo)

		err := svc.UpdateStatus(context.Background(), 10, "confirmed", admin)
		assert.ErrorIs(t, err, ErrRoomUnavailable)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &fakeRepo{
			bookings:  map[int64]*domain.Booking{10: testBooking(domain.StatusPending)},
			updateErr: errors.New("connection reset"),
		}
		svc := newService(repo)

		err := svc.UpdateStatus(context.Background(), 10, "confirmed", admin)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
