package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tcpchat/internal/adapter/postgres"
	messagerepo "github.com/heartmarshall/tcpchat/internal/adapter/postgres/message"
	roomrepo "github.com/heartmarshall/tcpchat/internal/adapter/postgres/room"
	userrepo "github.com/heartmarshall/tcpchat/internal/adapter/postgres/user"
	anthropicprovider "github.com/heartmarshall/tcpchat/internal/adapter/provider/anthropic"
	ollamaprovider "github.com/heartmarshall/tcpchat/internal/adapter/provider/ollama"
	redisadapter "github.com/heartmarshall/tcpchat/internal/adapter/redis"
	membershipcache "github.com/heartmarshall/tcpchat/internal/adapter/redis/membership"
	"github.com/heartmarshall/tcpchat/internal/config"
	authsvc "github.com/heartmarshall/tcpchat/internal/service/auth"
	"github.com/heartmarshall/tcpchat/internal/service/chat"
	membershipsvc "github.com/heartmarshall/tcpchat/internal/service/membership"
	"github.com/heartmarshall/tcpchat/internal/transport/rest"
	"github.com/heartmarshall/tcpchat/internal/transport/rpc"
	"github.com/heartmarshall/tcpchat/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, rebuilds the membership cache, and serves the gRPC
// API plus the HTTP health endpoints until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildAttrs(),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	shutdownTelemetry, err := initTelemetry(ctx, cfg.Telemetry, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(sctx); err != nil {
			logger.Error("telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	// --- Storage ---

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}

	redisClient, err := redisadapter.NewClient(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer redisClient.Close()

	users := userrepo.New(pool)
	rooms := roomrepo.New(pool)
	messages := messagerepo.New(pool)
	txm := postgres.NewTxManager(pool)
	cache := membershipcache.New(redisClient, cfg.Cache.KeyPrefix)

	// --- Services ---

	authService := authsvc.NewService(logger, users, cfg.Auth)

	membershipService := membershipsvc.NewService(logger, cache, users, rooms)
	if _, err := membershipService.Rebuild(ctx); err != nil {
		return fmt.Errorf("membership: %w", err)
	}

	chatService := chat.NewService(logger, users, rooms, messages, membershipService, txm, cfg.Chat)
	summarizer, err := newSummarizer(cfg.LLM, logger)
	if err != nil {
		return err
	}
	if summarizer != nil {
		chatService.SetSummarizer(summarizer)
	}

	// --- Transport ---

	grpcServer, err := rpc.NewServer(cfg.Server, cfg.Auth, logger, chatService, authService, authService)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		grpcServer.Stop()
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}

	health := rest.NewHealthHandler(BuildVersion(),
		rest.Component{Name: "database", Pinger: pool},
		rest.Component{Name: "cache", Pinger: cache},
	)
	healthServer := &http.Server{
		Addr:              cfg.Server.HealthAddr(),
		Handler:           health.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("grpc server listening",
			slog.String("addr", lis.Addr().String()),
			slog.Bool("tls", cfg.Server.TLSEnabled()),
		)
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("health server listening", slog.String("addr", healthServer.Addr))
		if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("health server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		// Finishing the brokers first lets every open stream drain and
		// return, otherwise GracefulStop would wait on them forever.
		chatService.Close()
		stopGRPC(grpcServer, cfg.Server.ShutdownTimeout, logger)

		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := healthServer.Shutdown(sctx); err != nil {
			logger.Error("health server shutdown failed", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

// stopGRPC drains in-flight calls, falling back to a hard stop once the
// timeout elapses.
func stopGRPC(srv *rpc.Server, timeout time.Duration, logger *slog.Logger) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		logger.Warn("graceful stop timed out, forcing", slog.Duration("timeout", timeout))
		srv.Stop()
		<-done
	}
}

type summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// newSummarizer builds the room analysis backend selected by cfg. It
// returns nil for the "none" provider.
func newSummarizer(cfg config.LLMConfig, logger *slog.Logger) (summarizer, error) {
	switch cfg.Provider {
	case config.LLMProviderOllama:
		p, err := ollamaprovider.NewProvider(cfg.Host, cfg.Model, cfg.Timeout, logger)
		if err != nil {
			return nil, fmt.Errorf("llm: %w", err)
		}
		return p, nil
	case config.LLMProviderAnthropic:
		return anthropicprovider.NewProvider(cfg.APIKey, cfg.Model, cfg.MaxTokens, cfg.Timeout, logger), nil
	default:
		return nil, nil
	}
}
