package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resortly/booking-service/internal/api/middleware"
	"github.com/resortly/booking-service/internal/domain"
	createBooking "github.com/resortly/booking-service/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string, identity *domain.Identity) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if identity != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), *identity))
	}

	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

var guestIdentity = domain.Identity{UserID: 42, Role: domain.RoleGuest}

const validBody = `{"roomId": 7, "checkIn": "2026-07-01", "checkOut": "2026-07-04", "numGuests": 2}`

func TestHandle_Created(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:             101,
		RoomID:         7,
		UserID:         42,
		CheckIn:        time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		NumGuests:      2,
		TotalCostCents: 30000,
		Status:         "pending",
		CreatedAt:      now,
		UpdatedAt:      now,
	}}

	rec := doRequest(t, uc, validBody, &guestIdentity)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "2026-07-01", resp.CheckIn)
	assert.Equal(t, "2026-07-04", resp.CheckOut)
	assert.Equal(t, int64(30000), resp.TotalCostCents)
	assert.Equal(t, "pending", resp.Status)

	// Identity comes from the token, not the body.
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(42), uc.got.Identity.UserID)
}

func TestHandle_MissingIdentity(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, validBody, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_BadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json"},
		{name: "unknown field", body: `{"roomId": 7, "checkIn": "2026-07-01", "checkOut": "2026-07-04", "numGuests": 2, "userId": 1}`},
		{name: "bad date format", body: `{"roomId": 7, "checkIn": "01.07.2026", "checkOut": "2026-07-04", "numGuests": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, tt.body, &guestIdentity)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "invalid date range", err: createBooking.ErrInvalidDateRange, wantCode: http.StatusBadRequest},
		{name: "room not found", err: createBooking.ErrRoomNotFound, wantCode: http.StatusNotFound},
		{name: "capacity exceeded", err: createBooking.ErrCapacityExceeded, wantCode: http.StatusBadRequest},
		{name: "room unavailable", err: createBooking.ErrRoomUnavailable, wantCode: http.StatusConflict},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody, &guestIdentity)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
