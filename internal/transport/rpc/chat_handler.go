package rpc

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/heartmarshall/tcpchat/internal/domain"
	"github.com/heartmarshall/tcpchat/internal/service/chat"
	"github.com/heartmarshall/tcpchat/internal/stream"
)

type chatService interface {
	LookupUser(ctx context.Context, q chat.UserQuery) (*domain.User, error)
	LookupRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	ListMessages(ctx context.Context, roomID uuid.UUID) ([]domain.Message, error)
	SendMessage(ctx context.Context, roomID uuid.UUID, text string) (*domain.Message, error)
	CreateRoom(ctx context.Context, name string, members []uuid.UUID) (*domain.Room, error)
	CreateRoomWithUser(ctx context.Context, peer uuid.UUID) (*domain.Room, error)
	AnalyzeRoom(ctx context.Context, roomID uuid.UUID) (string, error)
	SubscribeToRoom(ctx context.Context, roomID uuid.UUID) (*stream.Channel[domain.RoomEvent], error)
	SubscribeToUserEvents(ctx context.Context) (*stream.Channel[domain.UserEvent], error)
}

// ChatHandler adapts the chat service to the tcpchat.Chat wire contract.
// Domain errors are returned as-is and translated by the server's error
// interceptor.
type ChatHandler struct {
	chat chatService
	log  *slog.Logger
}

var _ ChatServer = (*ChatHandler)(nil)

func NewChatHandler(chat chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, log: logger.With("handler", "chat")}
}

func (h *ChatHandler) LookupUser(ctx context.Context, in *UserQuery) (*User, error) {
	q := chat.UserQuery{Username: in.Username}
	if in.UUID != "" {
		id, err := parseUUID("uuid", in.UUID)
		if err != nil {
			return nil, err
		}
		q.ID = id
	}

	u, err := h.chat.LookupUser(ctx, q)
	if err != nil {
		return nil, err
	}
	return toWireUser(u), nil
}

func (h *ChatHandler) LookupRoom(ctx context.Context, in *RoomRef) (*Room, error) {
	id, err := parseUUID("uuid", in.UUID)
	if err != nil {
		return nil, err
	}

	room, err := h.chat.LookupRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toWireRoom(*room)
	return &out, nil
}

func (h *ChatHandler) ListRooms(ctx context.Context, _ *Empty) (*RoomList, error) {
	rooms, err := h.chat.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	out := &RoomList{Rooms: make([]Room, len(rooms))}
	for i, r := range rooms {
		out.Rooms[i] = toWireRoom(r)
	}
	return out, nil
}

func (h *ChatHandler) ListMessages(ctx context.Context, in *RoomRef) (*MessageList, error) {
	id, err := parseUUID("uuid", in.UUID)
	if err != nil {
		return nil, err
	}

	msgs, err := h.chat.ListMessages(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &MessageList{Messages: make([]Message, len(msgs))}
	for i, m := range msgs {
		out.Messages[i] = toWireMessage(m)
	}
	return out, nil
}

func (h *ChatHandler) SendMessage(ctx context.Context, in *ClientMessage) (*Empty, error) {
	id, err := parseUUID("room_uuid", in.RoomUUID)
	if err != nil {
		return nil, err
	}
	if _, err := h.chat.SendMessage(ctx, id, in.Text); err != nil {
		return nil, err
	}
	return &Empty{}, nil
}

func (h *ChatHandler) CreateRoom(ctx context.Context, in *ClientRoom) (*RoomRef, error) {
	members, err := parseUUIDs("members", in.Members)
	if err != nil {
		return nil, err
	}

	room, err := h.chat.CreateRoom(ctx, in.Name, members)
	if err != nil {
		return nil, err
	}
	return &RoomRef{UUID: room.ID.String()}, nil
}

func (h *ChatHandler) CreateRoomWithUser(ctx context.Context, in *PeerRef) (*RoomRef, error) {
	peer, err := parseUUID("user_uuid", in.UserUUID)
	if err != nil {
		return nil, err
	}

	room, err := h.chat.CreateRoomWithUser(ctx, peer)
	if err != nil {
		return nil, err
	}
	return &RoomRef{UUID: room.ID.String()}, nil
}

func (h *ChatHandler) AnalyzeRoom(ctx context.Context, in *RoomRef) (*RoomAnalysis, error) {
	id, err := parseUUID("uuid", in.UUID)
	if err != nil {
		return nil, err
	}

	summary, err := h.chat.AnalyzeRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RoomAnalysis{RoomUUID: id.String(), Summary: summary}, nil
}

// SubscribeToRoom streams room events until the client goes away or the
// server shuts down. Response headers are sent as soon as the subscription
// is live, so a client that waits for them will not miss later messages.
func (h *ChatHandler) SubscribeToRoom(in *RoomRef, srv grpc.ServerStreamingServer[RoomEvent]) error {
	ctx := srv.Context()
	id, err := parseUUID("uuid", in.UUID)
	if err != nil {
		return err
	}

	ch, err := h.chat.SubscribeToRoom(ctx, id)
	if err != nil {
		return err
	}
	defer ch.Close()

	return serve(ctx, srv, ch, toWireRoomEvent)
}

// SubscribeToUserEvents streams the caller's user events.
func (h *ChatHandler) SubscribeToUserEvents(_ *Empty, srv grpc.ServerStreamingServer[UserEvent]) error {
	ctx := srv.Context()
	ch, err := h.chat.SubscribeToUserEvents(ctx)
	if err != nil {
		return err
	}
	defer ch.Close()

	return serve(ctx, srv, ch, toWireUserEvent)
}

func serve[T, W any](ctx context.Context, srv grpc.ServerStreamingServer[W], ch *stream.Channel[T], conv func(T) *W) error {
	if err := srv.SendHeader(metadata.MD{}); err != nil {
		return err
	}
	return ch.Serve(ctx, func(v T) error {
		return srv.Send(conv(v))
	})
}
