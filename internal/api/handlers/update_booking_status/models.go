package update_booking_status

// UpdateStatusRequest is the admin status override payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
