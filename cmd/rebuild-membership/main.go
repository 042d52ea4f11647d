// Command rebuild-membership repopulates the Redis membership cache from
// the room_members table. The server does the same at start-up; this tool
// repairs the cache of a running deployment.
//
// Usage:
//
//	rebuild-membership [--prefix=membership:]
//
// Requires DATABASE_DSN and CACHE_URL environment variables to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	roomrepo "github.com/heartmarshall/tcpchat/internal/adapter/postgres/room"
	userrepo "github.com/heartmarshall/tcpchat/internal/adapter/postgres/user"
	redisadapter "github.com/heartmarshall/tcpchat/internal/adapter/redis"
	membershipcache "github.com/heartmarshall/tcpchat/internal/adapter/redis/membership"
	"github.com/heartmarshall/tcpchat/internal/config"
	membershipsvc "github.com/heartmarshall/tcpchat/internal/service/membership"
)

func main() {
	prefix := flag.String("prefix", "membership:", "key prefix of the membership cache")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}
	cacheURL := os.Getenv("CACHE_URL")
	if cacheURL == "" {
		log.Fatal("CACHE_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	client, err := redisadapter.NewClient(ctx, config.CacheConfig{URL: cacheURL})
	if err != nil {
		log.Fatalf("connect to cache: %v", err)
	}
	defer client.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	svc := membershipsvc.NewService(logger,
		membershipcache.New(client, *prefix),
		userrepo.New(pool),
		roomrepo.New(pool),
	)

	stats, err := svc.Rebuild(ctx)
	if err != nil {
		log.Fatalf("rebuild membership: %v", err)
	}

	fmt.Printf("Flushed %d keys, cached %d memberships for %d users in %s.\n",
		stats.Flushed, stats.Memberships, stats.Users, stats.Duration.Round(time.Millisecond))
}
