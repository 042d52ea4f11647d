package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tcpchat/internal/domain"
)

// UserQuery identifies a user either by ID or by username. Exactly one field
// must be set.
type UserQuery struct {
	ID       uuid.UUID
	Username string
}

func (q UserQuery) validate() error {
	q.Username = strings.TrimSpace(q.Username)
	hasID := q.ID != uuid.Nil
	hasName := q.Username != ""
	switch {
	case hasID && hasName:
		return domain.NewValidationError("identifier", "set either uuid or username, not both")
	case !hasID && !hasName:
		return domain.NewValidationError("identifier", "uuid or username required")
	}
	return nil
}

// LookupUser returns the public profile of a user. Credentials are cleared.
func (s *Service) LookupUser(ctx context.Context, q UserQuery) (*domain.User, error) {
	if _, err := callerFromCtx(ctx); err != nil {
		return nil, err
	}
	if err := q.validate(); err != nil {
		return nil, err
	}

	var (
		u   *domain.User
		err error
	)
	if q.ID != uuid.Nil {
		u, err = s.users.GetByID(ctx, q.ID)
	} else {
		u, err = s.users.GetByUsername(ctx, strings.TrimSpace(q.Username))
	}
	if err != nil {
		return nil, fmt.Errorf("chat.LookupUser: %w", err)
	}

	public := *u
	public.PasswordHash = ""
	public.AuthToken = ""
	return &public, nil
}

// LookupRoom returns a room with its members. Any authenticated user may look
// up any room by ID.
func (s *Service) LookupRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	if _, err := callerFromCtx(ctx); err != nil {
		return nil, err
	}
	if roomID == uuid.Nil {
		return nil, domain.NewValidationError("room_uuid", "required")
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("chat.LookupRoom: %w", err)
	}
	return room, nil
}

// ListRooms returns the caller's rooms in join order.
func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	caller, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	ids := s.membership.Rooms(ctx, caller)
	if len(ids) == 0 {
		return []domain.Room{}, nil
	}

	rooms, err := s.rooms.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("chat.ListRooms: %w", err)
	}
	return rooms, nil
}
