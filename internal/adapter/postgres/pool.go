package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tcpchat/internal/config"
)

const applicationName = "tcpchat"

// NewPool opens the connection pool and pings it so a bad DSN fails
// start-up. Queries slower than cfg.SlowQueryThreshold are logged at warn.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}
	if cfg.SlowQueryThreshold > 0 {
		poolCfg.ConnConfig.Tracer = newSlowQueryTracer(logger, cfg.SlowQueryThreshold)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// slowQueryTracer implements pgx.QueryTracer.
type slowQueryTracer struct {
	log       *slog.Logger
	threshold time.Duration
	now       func() time.Time
}

type queryStartKey struct{}

type queryStart struct {
	sql string
	at  time.Time
}

func newSlowQueryTracer(logger *slog.Logger, threshold time.Duration) *slowQueryTracer {
	return &slowQueryTracer{
		log:       logger.With("adapter", "postgres"),
		threshold: threshold,
		now:       time.Now,
	}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{sql: data.SQL, at: t.now()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}

	elapsed := t.now().Sub(start.at)
	if elapsed < t.threshold {
		return
	}

	attrs := []any{
		slog.String("sql", start.sql),
		slog.Duration("duration", elapsed),
		slog.Int64("rows", data.CommandTag.RowsAffected()),
	}
	if data.Err != nil {
		attrs = append(attrs, slog.String("error", data.Err.Error()))
	}
	t.log.WarnContext(ctx, "slow query", attrs...)
}
