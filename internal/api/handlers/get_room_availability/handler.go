package get_room_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/resortly/booking-service/internal/api/handlers"
	"github.com/resortly/booking-service/internal/domain"
	checkAvailability "github.com/resortly/booking-service/internal/usecase/check_availability"
)

const (
	msgInvalidRoomID    = "invalid room ID"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDateRange = "check-out must be after check-in"
)

// AvailabilityResponse is the dry-run availability answer.
type AvailabilityResponse struct {
	RoomID    int64  `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Available bool   `json:"available"`
}

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?checkIn=&checkOut=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	checkIn, err := time.Parse(domain.DateFormat, query.Get("checkIn"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid checkIn: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	checkOut, err := time.Parse(domain.DateFormat, query.Get("checkOut"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid checkOut: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid date range: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid input: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidRoomID)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{
		RoomID:    result.RoomID,
		CheckIn:   result.CheckIn.Format(domain.DateFormat),
		CheckOut:  result.CheckOut.Format(domain.DateFormat),
		Available: result.Available,
	})
}
