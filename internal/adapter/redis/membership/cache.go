// Package membership stores the user -> rooms index in Redis lists.
//
// Each user owns one list at <prefix><user-uuid> holding room UUIDs in the
// order the user joined them. The lists are a derived view of the
// room_members table and can be dropped and rebuilt at any time.
package membership

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const scanBatch = 500

// Cache is a Redis-backed membership index.
type Cache struct {
	client goredis.UniversalClient
	prefix string
}

// New creates a cache over client. Every key it touches starts with prefix.
func New(client goredis.UniversalClient, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

func (c *Cache) key(user uuid.UUID) string {
	return c.prefix + user.String()
}

// Rooms returns the cached rooms of user in join order. A user with no key
// yields an empty slice.
func (c *Cache) Rooms(ctx context.Context, user uuid.UUID) ([]uuid.UUID, error) {
	raw, err := c.client.LRange(ctx, c.key(user), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("membership cache: lrange %s: %w", user, err)
	}

	rooms := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("membership cache: corrupt entry %q for %s: %w", s, user, err)
		}
		rooms = append(rooms, id)
	}
	return rooms, nil
}

// Append adds room to the end of user's list.
func (c *Cache) Append(ctx context.Context, user, room uuid.UUID) error {
	if err := c.client.RPush(ctx, c.key(user), room.String()).Err(); err != nil {
		return fmt.Errorf("membership cache: rpush %s: %w", user, err)
	}
	return nil
}

// Replace atomically overwrites user's list with rooms.
func (c *Cache) Replace(ctx context.Context, user uuid.UUID, rooms []uuid.UUID) error {
	key := c.key(user)

	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(rooms) == 0 {
			return nil
		}
		values := make([]any, len(rooms))
		for i, r := range rooms {
			values[i] = r.String()
		}
		pipe.RPush(ctx, key, values...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("membership cache: replace %s: %w", user, err)
	}
	return nil
}

// Flush deletes every key under the cache prefix and returns how many were
// removed. Keys outside the prefix are left alone.
func (c *Cache) Flush(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", scanBatch).Result()
		if err != nil {
			return removed, fmt.Errorf("membership cache: scan: %w", err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("membership cache: del: %w", err)
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}

// Ping checks connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
