package interceptor

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/heartmarshall/tcpchat/pkg/ctxutil"
)

// RateLimiter is a per-user token bucket. Idle buckets are collected by a
// background goroutine; call Stop on shutdown.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*userLimiter
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	stop    chan struct{}
	once    sync.Once
}

type userLimiter struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewRateLimiter allows perSecond events per user with the given burst.
func NewRateLimiter(perSecond float64, burst int, ttl time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*userLimiter),
		limit:   rate.Limit(perSecond),
		burst:   burst,
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	go rl.gc()
	return rl
}

// Stop terminates the collector. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Allow reports whether key may perform one more event now.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	b, ok := rl.buckets[key]
	if !ok {
		b = &userLimiter{lim: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.seen = time.Now()
	rl.mu.Unlock()

	return b.lim.Allow()
}

// Unary limits the listed full method names per authenticated caller. Calls
// without a caller in the context are not limited; Auth runs first.
func (rl *RateLimiter) Unary(methods ...string) grpc.UnaryServerInterceptor {
	limited := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		limited[m] = struct{}{}
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := limited[info.FullMethod]; !ok {
			return handler(ctx, req)
		}
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if ok && !rl.Allow(userID.String()) {
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}

func (rl *RateLimiter) gc() {
	interval := rl.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.mu.Lock()
			for k, b := range rl.buckets {
				if now.Sub(b.seen) > rl.ttl {
					delete(rl.buckets, k)
				}
			}
			rl.mu.Unlock()
		}
	}
}
