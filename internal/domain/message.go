package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is an immutable chat message.
type Message struct {
	ID        uuid.UUID
	SenderID  uuid.UUID
	RoomID    uuid.UUID
	Text      string
	Timestamp time.Time
}

// NewMessage stamps a message with a fresh ID and the current time. The
// timestamp is truncated to microseconds so it survives a Postgres round trip
// unchanged.
func NewMessage(sender, room uuid.UUID, text string, now time.Time) Message {
	return Message{
		ID:        uuid.New(),
		SenderID:  sender,
		RoomID:    room,
		Text:      text,
		Timestamp: now.UTC().Truncate(time.Microsecond),
	}
}

// AuthoredMessage pairs a message with its sender's username.
type AuthoredMessage struct {
	Message
	SenderName string
}
