package roomservice

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("roomservice client: internal error")

	// ErrInvalidResponse is returned when the room service responds with
	// an unexpected status or payload.
	ErrInvalidResponse = errors.New("roomservice client: invalid response")
)
