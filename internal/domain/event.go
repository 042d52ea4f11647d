package domain

import "github.com/google/uuid"

// RoomEvent is delivered to room subscribers. The only kind today is a new
// message.
type RoomEvent struct {
	RoomID  uuid.UUID
	Message Message
}

// UserEventKind enumerates user-scoped notifications.
type UserEventKind string

const (
	UserEventAddedToRoom UserEventKind = "added_to_room"
)

// UserEvent is delivered to the stream of a single user.
type UserEvent struct {
	UserID uuid.UUID
	Kind   UserEventKind
	RoomID uuid.UUID
}
