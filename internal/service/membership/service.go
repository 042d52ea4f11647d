// Package membership answers "which rooms is this user in" from the cache and
// keeps the cache derived from the room_members table.
//
// Reads fail closed: any cache error is logged and reported as "member of
// nothing", so an outage can only hide rooms, never expose them.
package membership

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
)

// cache is the KV index of user -> ordered room IDs.
type cache interface {
	Rooms(ctx context.Context, user uuid.UUID) ([]uuid.UUID, error)
	Append(ctx context.Context, user, room uuid.UUID) error
	Replace(ctx context.Context, user uuid.UUID, rooms []uuid.UUID) error
	Flush(ctx context.Context) (int, error)
}

// userLister enumerates registered users.
type userLister interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// membershipSource is the durable membership relation.
type membershipSource interface {
	RoomIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Service implements membership lookups over the cache.
type Service struct {
	log   *slog.Logger
	cache cache
	users userLister
	rooms membershipSource
}

// NewService creates a new membership service instance.
func NewService(logger *slog.Logger, c cache, users userLister, rooms membershipSource) *Service {
	return &Service{
		log:   logger.With("service", "membership"),
		cache: c,
		users: users,
		rooms: rooms,
	}
}

// RebuildStats summarizes a Rebuild run.
type RebuildStats struct {
	Flushed     int
	Users       int
	Memberships int
	Duration    time.Duration
}

// Rebuild drops every cached entry and reloads all of them from storage,
// preserving each user's join order. It is idempotent.
func (s *Service) Rebuild(ctx context.Context) (RebuildStats, error) {
	start := time.Now()
	var stats RebuildStats

	flushed, err := s.cache.Flush(ctx)
	if err != nil {
		return stats, fmt.Errorf("membership.Rebuild flush: %w", err)
	}
	stats.Flushed = flushed

	users, err := s.users.ListIDs(ctx)
	if err != nil {
		return stats, fmt.Errorf("membership.Rebuild list users: %w", err)
	}

	for _, user := range users {
		rooms, err := s.rooms.RoomIDsByUser(ctx, user)
		if err != nil {
			return stats, fmt.Errorf("membership.Rebuild load %s: %w", user, err)
		}
		if len(rooms) == 0 {
			continue
		}
		if err := s.cache.Replace(ctx, user, rooms); err != nil {
			return stats, fmt.Errorf("membership.Rebuild store %s: %w", user, err)
		}
		stats.Users++
		stats.Memberships += len(rooms)
	}

	stats.Duration = time.Since(start)
	s.log.InfoContext(ctx, "membership cache rebuilt",
		slog.Int("flushed_keys", stats.Flushed),
		slog.Int("users", stats.Users),
		slog.Int("memberships", stats.Memberships),
		slog.Duration("duration", stats.Duration))

	return stats, nil
}

// Rooms returns the rooms of user in join order. Cache errors yield nil.
func (s *Service) Rooms(ctx context.Context, user uuid.UUID) []uuid.UUID {
	rooms, err := s.cache.Rooms(ctx, user)
	if err != nil {
		s.log.ErrorContext(ctx, "membership cache read failed, treating as no rooms",
			slog.String("user_id", user.String()),
			slog.String("error", err.Error()))
		return nil
	}
	return rooms
}

// IsMember reports whether room is among the cached rooms of user.
func (s *Service) IsMember(ctx context.Context, user, room uuid.UUID) bool {
	return slices.Contains(s.Rooms(ctx, user), room)
}

// Add appends room to user's cached list.
func (s *Service) Add(ctx context.Context, user, room uuid.UUID) error {
	if err := s.cache.Append(ctx, user, room); err != nil {
		return fmt.Errorf("membership.Add: %w", err)
	}
	return nil
}
