package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tcpchat/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique username and a fixed token.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + uniqueSuffix(),
		PasswordHash: "not-a-real-hash",
		AuthToken:    strings.Repeat("a", 32),
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, auth_token, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.PasswordHash, user.AuthToken, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedRoom inserts a room with the given members. Membership rows are written
// in slice order.
func SeedRoom(t *testing.T, pool *pgxpool.Pool, members ...uuid.UUID) domain.Room {
	t.Helper()
	ctx := context.Background()

	room := domain.Room{
		ID:      uuid.New(),
		Name:    "room-" + uniqueSuffix(),
		Members: members,
	}

	if _, err := pool.Exec(ctx, `INSERT INTO rooms (id, name) VALUES ($1, $2)`, room.ID, room.Name); err != nil {
		t.Fatalf("testhelper: SeedRoom insert room: %v", err)
	}

	for _, m := range members {
		_, err := pool.Exec(ctx, `INSERT INTO room_members (room_id, user_id) VALUES ($1, $2)`, room.ID, m)
		if err != nil {
			t.Fatalf("testhelper: SeedRoom insert member: %v", err)
		}
	}

	return room
}

// SeedMessage inserts a message into room on behalf of sender.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, sender, room uuid.UUID, text string) domain.Message {
	t.Helper()

	msg := domain.NewMessage(sender, room, text, time.Now())

	_, err := pool.Exec(context.Background(),
		`INSERT INTO messages (id, sender_id, room_id, text, sent_at) VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.SenderID, msg.RoomID, msg.Text, msg.Timestamp,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage: %v", err)
	}

	return msg
}
