// Package chat implements the room-scoped messaging core: lookups, room
// creation, the store-and-broadcast message path and the live subscriptions.
package chat

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tcpchat/internal/broadcast"
	"github.com/heartmarshall/tcpchat/internal/config"
	"github.com/heartmarshall/tcpchat/internal/domain"
	"github.com/heartmarshall/tcpchat/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type roomRepo interface {
	Create(ctx context.Context, room domain.Room) error
	AddMembers(ctx context.Context, roomID uuid.UUID, users []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Room, error)
}

type messageRepo interface {
	Create(ctx context.Context, m domain.Message) error
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Message, error)
	ListByRoomWithSenders(ctx context.Context, roomID uuid.UUID) ([]domain.AuthoredMessage, error)
}

// membershipIndex is the fail-closed membership view.
type membershipIndex interface {
	Rooms(ctx context.Context, user uuid.UUID) []uuid.UUID
	IsMember(ctx context.Context, user, room uuid.UUID) bool
	Add(ctx context.Context, user, room uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the Chat operations. It owns the two process-wide
// brokers; Close ends every live subscription.
type Service struct {
	log        *slog.Logger
	users      userRepo
	rooms      roomRepo
	messages   messageRepo
	membership membershipIndex
	tx         txManager
	llm        summarizer
	cfg        config.ChatConfig
	metrics    *metrics

	roomEvents *broadcast.Broker[domain.RoomEvent]
	userEvents *broadcast.Broker[domain.UserEvent]
}

// NewService creates a new Chat service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	rooms roomRepo,
	messages messageRepo,
	membership membershipIndex,
	tx txManager,
	cfg config.ChatConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "chat"),
		users:      users,
		rooms:      rooms,
		messages:   messages,
		membership: membership,
		tx:         tx,
		cfg:        cfg,
		metrics:    newMetrics(),
		roomEvents: broadcast.New[domain.RoomEvent](cfg.BroadcastCapacity),
		userEvents: broadcast.New[domain.UserEvent](cfg.BroadcastCapacity),
	}
}

// SetSummarizer injects the optional LLM backend used by AnalyzeRoom.
func (s *Service) SetSummarizer(llm summarizer) {
	s.llm = llm
}

// Close shuts both brokers down. Live subscriptions drain and finish.
func (s *Service) Close() {
	s.roomEvents.Close()
	s.userEvents.Close()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func callerFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// requireMember returns ErrForbidden unless the caller is in room.
func (s *Service) requireMember(ctx context.Context, caller, room uuid.UUID) error {
	if s.membership.IsMember(ctx, caller, room) {
		return nil
	}
	s.log.WarnContext(ctx, "access to foreign room refused",
		slog.String("user_id", caller.String()),
		slog.String("room_id", room.String()))
	return domain.ErrForbidden
}
