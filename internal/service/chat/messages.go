package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tcpchat/internal/broadcast"
	"github.com/heartmarshall/tcpchat/internal/domain"
)

// SendMessage stores a message from the caller and broadcasts it to the
// room's subscribers. The call succeeds once the message is stored, whether
// or not anyone is listening.
func (s *Service) SendMessage(ctx context.Context, roomID uuid.UUID, text string) (*domain.Message, error) {
	caller, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if roomID == uuid.Nil {
		return nil, domain.NewValidationError("room_uuid", "required")
	}

	msg := domain.NewMessage(caller, roomID, text, time.Now())

	if err := s.requireMember(ctx, caller, roomID); err != nil {
		return nil, err
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("chat.SendMessage: %w", err)
	}
	s.metrics.messagesSent.Add(ctx, 1)

	delivered, err := s.roomEvents.Publish(domain.RoomEvent{RoomID: roomID, Message: msg})
	switch {
	case errors.Is(err, broadcast.ErrNoSubscribers):
		s.log.DebugContext(ctx, "message stored, no live subscribers",
			slog.String("message_id", msg.ID.String()))
	case err != nil:
		s.log.ErrorContext(ctx, "message broadcast failed",
			slog.String("message_id", msg.ID.String()),
			slog.String("error", err.Error()))
	default:
		s.log.DebugContext(ctx, "message broadcast",
			slog.String("message_id", msg.ID.String()),
			slog.Int("delivered", delivered))
	}

	return &msg, nil
}

// ListMessages returns the full history of a room the caller belongs to, in
// storage order.
func (s *Service) ListMessages(ctx context.Context, roomID uuid.UUID) ([]domain.Message, error) {
	caller, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if roomID == uuid.Nil {
		return nil, domain.NewValidationError("room_uuid", "required")
	}
	if err := s.requireMember(ctx, caller, roomID); err != nil {
		return nil, err
	}

	msgs, err := s.messages.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("chat.ListMessages: %w", err)
	}
	return msgs, nil
}
