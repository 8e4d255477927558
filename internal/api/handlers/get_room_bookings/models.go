package get_room_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/resortly/booking-service/internal/domain"
	"github.com/resortly/booking-service/internal/service/bookings/models"
)

// parseQuery builds the listing request from query parameters:
// from / to (YYYY-MM-DD), status, includeInactive.
func parseQuery(roomID int64, query url.Values) (*models.ListRoomBookingsRequest, error) {
	req := &models.ListRoomBookingsRequest{RoomID: roomID}

	if from := query.Get("from"); from != "" {
		t, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			return nil, err
		}
		req.StartDate = &t
	}

	if to := query.Get("to"); to != "" {
		t, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			return nil, err
		}
		req.EndDate = &t
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = include
	}

	return req, nil
}
