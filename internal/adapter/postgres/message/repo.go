// Package message implements message persistence using PostgreSQL.
package message

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

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a message. Storage order is the insertion order.
func (r *Repo) Create(ctx context.Context, m domain.Message) error {
	sql, args, err := postgres.Builder().
		Insert("messages").
		Columns("id", "sender_id", "room_id", "text", "sent_at").
		Values(m.ID, m.SenderID, m.RoomID, m.Text, m.Timestamp).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create message: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "message", m.ID)
	}
	return nil
}

// ListByRoom returns every message of a room in storage order.
func (r *Repo) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Message, error) {
	sql, args, err := postgres.Builder().
		Select("id", "sender_id", "room_id", "text", "sent_at").
		From("messages").
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list messages: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "room", roomID)
	}

	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Message, error) {
		var m domain.Message
		err := row.Scan(&m.ID, &m.SenderID, &m.RoomID, &m.Text, &m.Timestamp)
		m.Timestamp = m.Timestamp.UTC()
		return m, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "room", roomID)
	}
	return msgs, nil
}

// ListByRoomWithSenders is ListByRoom with each sender's username attached.
func (r *Repo) ListByRoomWithSenders(ctx context.Context, roomID uuid.UUID) ([]domain.AuthoredMessage, error) {
	sql, args, err := postgres.Builder().
		Select("m.id", "m.sender_id", "m.room_id", "m.text", "m.sent_at", "u.username").
		From("messages m").
		Join("users u ON u.id = m.sender_id").
		Where(sq.Eq{"m.room_id": roomID}).
		OrderBy("m.seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list authored messages: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "room", roomID)
	}

	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuthoredMessage, error) {
		var m domain.AuthoredMessage
		err := row.Scan(&m.ID, &m.SenderID, &m.RoomID, &m.Text, &m.Timestamp, &m.SenderName)
		m.Timestamp = m.Timestamp.UTC()
		return m, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "room", roomID)
	}
	return msgs, nil
}
