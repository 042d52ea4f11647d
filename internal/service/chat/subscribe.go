package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tcpchat/internal/broadcast"
	"github.com/heartmarshall/tcpchat/internal/domain"
	"github.com/heartmarshall/tcpchat/internal/stream"
)

// SubscribeToRoom authorizes the caller and returns a channel receiving every
// message posted to roomID from now on. The caller owns the channel and must
// Close it when the client goes away.
func (s *Service) SubscribeToRoom(ctx context.Context, roomID uuid.UUID) (*stream.Channel[domain.RoomEvent], error) {
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

	sub, err := s.roomEvents.Subscribe()
	if err != nil {
		return nil, subscribeError(err)
	}

	pumpCtx := context.WithoutCancel(ctx)
	ch := stream.New[domain.RoomEvent](s.cfg.SubscriberCapacity)
	accept := func(ev domain.RoomEvent) (domain.RoomEvent, bool) {
		if ev.RoomID != roomID {
			return ev, false
		}
		// Membership is checked per event, not just at subscribe time.
		return ev, s.membership.IsMember(pumpCtx, caller, roomID)
	}

	log := s.log.With(
		slog.String("subscription", "room"),
		slog.String("user_id", caller.String()),
		slog.String("room_id", roomID.String()))
	go pump(pumpCtx, s, log, ch, sub, accept)

	return ch, nil
}

// SubscribeToUserEvents returns a channel receiving the caller's user events
// (currently: being added to a room). The caller must Close it.
func (s *Service) SubscribeToUserEvents(ctx context.Context) (*stream.Channel[domain.UserEvent], error) {
	caller, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	sub, err := s.userEvents.Subscribe()
	if err != nil {
		return nil, subscribeError(err)
	}

	ch := stream.New[domain.UserEvent](s.cfg.SubscriberCapacity)
	accept := func(ev domain.UserEvent) (domain.UserEvent, bool) {
		return ev, ev.UserID == caller
	}

	log := s.log.With(
		slog.String("subscription", "user"),
		slog.String("user_id", caller.String()))
	go pump(context.WithoutCancel(ctx), s, log, ch, sub, accept)

	return ch, nil
}

func subscribeError(err error) error {
	if errors.Is(err, broadcast.ErrClosed) {
		return fmt.Errorf("chat: shutting down: %w", domain.ErrUnavailable)
	}
	return fmt.Errorf("chat.subscribe: %w", err)
}

// pump forwards broker items into ch until the client disconnects or the
// broker closes, then releases the subscription.
func pump[T any](
	ctx context.Context,
	s *Service,
	log *slog.Logger,
	ch *stream.Channel[T],
	sub *broadcast.Subscription[T],
	accept func(T) (T, bool),
) {
	s.metrics.activeSubscriptions.Add(ctx, 1)
	defer s.metrics.activeSubscriptions.Add(ctx, -1)
	defer sub.Unsubscribe()

	log.DebugContext(ctx, "subscription started")

	// TakeLagged counts broker-level loss across every room and user; dropped
	// counts only events this subscription accepted but could not buffer.
	var dropped, skipped int64
	checked := func(v T) (T, bool) {
		if lagged := sub.TakeLagged(); lagged > 0 {
			skipped += int64(lagged)
			s.metrics.subscriptionLag.Add(ctx, int64(lagged))
			log.WarnContext(ctx, "subscription fell behind broadcast, events skipped",
				slog.Uint64("skipped", lagged))
		}
		return accept(v)
	}
	onDrop := func(T) {
		dropped++
		s.metrics.droppedEvents.Add(ctx, 1)
		log.WarnContext(ctx, "subscriber buffer full, event dropped")
	}

	stream.Forward(ch, sub.C(), checked, onDrop)

	log.DebugContext(ctx, "subscription ended",
		slog.String("state", ch.State().String()),
		slog.Int64("dropped", dropped),
		slog.Int64("broadcast_skipped", skipped))
}
