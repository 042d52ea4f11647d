package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tcpchat/internal/broadcast"
	"github.com/heartmarshall/tcpchat/internal/domain"
)

// CreateRoom persists a room and its memberships atomically, then updates the
// membership cache and notifies every member.
func (s *Service) CreateRoom(ctx context.Context, name string, members []uuid.UUID) (*domain.Room, error) {
	if _, err := callerFromCtx(ctx); err != nil {
		return nil, err
	}
	return s.createRoom(ctx, name, members)
}

// CreateRoomWithUser opens a two-person room between the caller and peer.
func (s *Service) CreateRoomWithUser(ctx context.Context, peer uuid.UUID) (*domain.Room, error) {
	caller, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if peer == uuid.Nil {
		return nil, domain.NewValidationError("user_uuid", "required")
	}
	if peer == caller {
		return nil, domain.NewValidationError("user_uuid", "cannot open a private room with yourself")
	}

	other, err := s.users.GetByID(ctx, peer)
	if err != nil {
		return nil, fmt.Errorf("chat.CreateRoomWithUser peer: %w", err)
	}
	self, err := s.users.GetByID(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("chat.CreateRoomWithUser caller: %w", err)
	}

	name := domain.PrivateRoomName(self.Username, other.Username)
	return s.createRoom(ctx, name, []uuid.UUID{other.ID, self.ID})
}

func (s *Service) createRoom(ctx context.Context, name string, members []uuid.UUID) (*domain.Room, error) {
	room, err := domain.NewRoom(name, members)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.rooms.Create(ctx, room); err != nil {
			return err
		}
		return s.rooms.AddMembers(ctx, room.ID, room.Members)
	})
	if err != nil {
		return nil, fmt.Errorf("chat.CreateRoom: %w", err)
	}

	s.log.InfoContext(ctx, "room created",
		slog.String("room_id", room.ID.String()),
		slog.Int("members", len(room.Members)))
	s.metrics.roomsCreated.Add(ctx, 1)

	for _, member := range room.Members {
		// The room is committed; a cache miss only hides it until the next rebuild.
		if err := s.membership.Add(ctx, member, room.ID); err != nil {
			s.log.ErrorContext(ctx, "membership cache update failed",
				slog.String("user_id", member.String()),
				slog.String("room_id", room.ID.String()),
				slog.String("error", err.Error()))
		}

		event := domain.UserEvent{UserID: member, Kind: domain.UserEventAddedToRoom, RoomID: room.ID}
		if _, err := s.userEvents.Publish(event); err != nil && !errors.Is(err, broadcast.ErrNoSubscribers) {
			s.log.ErrorContext(ctx, "user event publish failed",
				slog.String("user_id", member.String()),
				slog.String("error", err.Error()))
		}
	}

	return &room, nil
}
