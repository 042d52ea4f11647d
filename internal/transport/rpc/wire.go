package rpc

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tcpchat/internal/domain"
)

// Wire messages. UUIDs travel as canonical strings so that a malformed one
// reaches the handler and becomes InvalidArgument rather than a codec error.

type Empty struct{}

type UserCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthPair struct {
	UserUUID string `json:"user_uuid"`
	Token    string `json:"token"`
}

// UserQuery selects a user by exactly one of UUID or Username.
type UserQuery struct {
	UUID     string `json:"uuid,omitempty"`
	Username string `json:"username,omitempty"`
}

type User struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

type RoomRef struct {
	UUID string `json:"uuid"`
}

type Room struct {
	UUID    string   `json:"uuid"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type RoomList struct {
	Rooms []Room `json:"rooms"`
}

type Message struct {
	UUID       string    `json:"uuid"`
	SenderUUID string    `json:"sender_uuid"`
	RoomUUID   string    `json:"room_uuid"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

type MessageList struct {
	Messages []Message `json:"messages"`
}

type ClientMessage struct {
	RoomUUID string `json:"room_uuid"`
	Text     string `json:"text"`
}

type ClientRoom struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type PeerRef struct {
	UserUUID string `json:"user_uuid"`
}

type RoomEvent struct {
	RoomUUID string  `json:"room_uuid"`
	Message  Message `json:"message"`
}

type UserEvent struct {
	UserUUID string `json:"user_uuid"`
	Kind     string `json:"kind"`
	RoomUUID string `json:"room_uuid"`
}

type RoomAnalysis struct {
	RoomUUID string `json:"room_uuid"`
	Summary  string `json:"summary"`
}

// ---------------------------------------------------------------------------
// Conversions
// ---------------------------------------------------------------------------

func parseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, domain.NewValidationError(field, "invalid uuid")
	}
	return id, nil
}

func parseUUIDs(field string, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := parseUUID(field, r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func toWireUser(u *domain.User) *User {
	return &User{UUID: u.ID.String(), Username: u.Username}
}

func toWireRoom(r domain.Room) Room {
	return Room{UUID: r.ID.String(), Name: r.Name, Members: uuidStrings(r.Members)}
}

func toWireMessage(m domain.Message) Message {
	return Message{
		UUID:       m.ID.String(),
		SenderUUID: m.SenderID.String(),
		RoomUUID:   m.RoomID.String(),
		Text:       m.Text,
		Timestamp:  m.Timestamp,
	}
}

func toWireRoomEvent(ev domain.RoomEvent) *RoomEvent {
	return &RoomEvent{RoomUUID: ev.RoomID.String(), Message: toWireMessage(ev.Message)}
}

func toWireUserEvent(ev domain.UserEvent) *UserEvent {
	return &UserEvent{UserUUID: ev.UserID.String(), Kind: string(ev.Kind), RoomUUID: ev.RoomID.String()}
}

// ToDomain converts a received message back into the domain type.
func (m Message) ToDomain() (domain.Message, error) {
	id, err := parseUUID("uuid", m.UUID)
	if err != nil {
		return domain.Message{}, err
	}
	sender, err := parseUUID("sender_uuid", m.SenderUUID)
	if err != nil {
		return domain.Message{}, err
	}
	room, err := parseUUID("room_uuid", m.RoomUUID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:        id,
		SenderID:  sender,
		RoomID:    room,
		Text:      m.Text,
		Timestamp: m.Timestamp.UTC(),
	}, nil
}
