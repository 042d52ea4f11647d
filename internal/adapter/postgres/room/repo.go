// Package room implements room and membership persistence using PostgreSQL.
package room

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tcpchat/internal/adapter/postgres"
	"github.com/heartmarshall/tcpchat/internal/domain"
)

// Repo provides room persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new room repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

// Create inserts the room row only. Members are written by AddMembers; run
// both inside one transaction.
func (r *Repo) Create(ctx context.Context, room domain.Room) error {
	sql, args, err := postgres.Builder().
		Insert("rooms").
		Columns("id", "name").
		Values(room.ID, room.Name).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "room", room.ID)
	}
	return nil
}

// GetByID returns a room together with its members in join order.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("id", "name").
		From("rooms").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room: %w", err)
	}

	var room domain.Room
	if err := q.QueryRow(ctx, sql, args...).Scan(&room.ID, &room.Name); err != nil {
		return nil, postgres.MapError(err, "room", id)
	}

	members, err := r.Members(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Members = members

	return &room, nil
}

// ListByIDs returns the rooms with the given IDs, members included, in the
// order of ids. Unknown IDs are skipped.
func (r *Repo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Room, error) {
	if len(ids) == 0 {
		return []domain.Room{}, nil
	}

	sql, args, err := postgres.Builder().
		Select("r.id", "r.name", "m.user_id").
		From("rooms r").
		Join("room_members m ON m.room_id = r.id").
		Where(sq.Eq{"r.id": ids}).
		OrderBy("m.seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rooms: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "room", uuid.Nil)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*domain.Room, len(ids))
	for rows.Next() {
		var (
			roomID uuid.UUID
			name   string
			member uuid.UUID
		)
		if err := rows.Scan(&roomID, &name, &member); err != nil {
			return nil, postgres.MapError(err, "room", uuid.Nil)
		}
		room, ok := byID[roomID]
		if !ok {
			room = &domain.Room{ID: roomID, Name: name}
			byID[roomID] = room
		}
		room.Members = append(room.Members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "room", uuid.Nil)
	}

	out := make([]domain.Room, 0, len(byID))
	for _, id := range ids {
		if room, ok := byID[id]; ok {
			out = append(out, *room)
			delete(byID, id)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Membership
// ---------------------------------------------------------------------------

// AddMembers inserts one membership row per user, in slice order.
func (r *Repo) AddMembers(ctx context.Context, roomID uuid.UUID, users []uuid.UUID) error {
	if len(users) == 0 {
		return nil
	}

	insert := postgres.Builder().
		Insert("room_members").
		Columns("room_id", "user_id")
	for _, u := range users {
		insert = insert.Values(roomID, u)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build add members: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "room_member", roomID)
	}
	return nil
}

// Members returns the user IDs of a room in join order.
func (r *Repo) Members(ctx context.Context, roomID uuid.UUID) ([]uuid.UUID, error) {
	return r.collectIDs(ctx, postgres.Builder().
		Select("user_id").
		From("room_members").
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("seq"), roomID)
}

// RoomIDsByUser returns the rooms a user belongs to, oldest membership first.
func (r *Repo) RoomIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.collectIDs(ctx, postgres.Builder().
		Select("room_id").
		From("room_members").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("seq"), userID)
}

func (r *Repo) collectIDs(ctx context.Context, query sq.SelectBuilder, id uuid.UUID) ([]uuid.UUID, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build membership query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "room_member", id)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "room_member", id)
	}
	return ids, nil
}
