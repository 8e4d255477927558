package cancel_booking

// CancelBookingRequest is the guest-facing status change payload.
// The only accepted action is "cancel"; anything else is rejected.
type CancelBookingRequest struct {
	Action string `json:"action"`
}

const actionCancel = "cancel"
