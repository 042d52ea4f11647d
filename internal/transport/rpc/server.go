// Package rpc exposes the chat over gRPC: the tcpchat.Registry and
// tcpchat.Chat services, their JSON wire messages and a typed client.
package rpc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/heartmarshall/tcpchat/internal/config"
	"github.com/heartmarshall/tcpchat/internal/transport/rpc/interceptor"
)

type authenticator interface {
	Authenticate(ctx context.Context, userID uuid.UUID, token string) error
}

// Server bundles the gRPC server with the resources its interceptors own.
type Server struct {
	*grpc.Server
	limiter *interceptor.RateLimiter
}

// NewServer builds a gRPC server with both services registered. The
// interceptor order is: request id, logging, recovery, auth, rate limit,
// error translation.
func NewServer(
	cfg config.ServerConfig,
	authCfg config.AuthConfig,
	logger *slog.Logger,
	chat chatService,
	registry registryService,
	auth authenticator,
) (*Server, error) {
	limiter := interceptor.NewRateLimiter(authCfg.SendRateLimit, authCfg.SendBurst, 10*time.Minute)
	authIcpt := interceptor.NewAuth(auth, logger, ChatServiceName)

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			interceptor.RequestIDUnary(),
			interceptor.LoggingUnary(logger),
			interceptor.RecoveryUnary(logger),
			authIcpt.Unary(),
			limiter.Unary(MethodSendMessage),
			errorsUnary(logger),
		),
		grpc.ChainStreamInterceptor(
			interceptor.RequestIDStream(),
			interceptor.LoggingStream(logger),
			interceptor.RecoveryStream(logger),
			authIcpt.Stream(),
			errorsStream(logger),
		),
	}

	if cfg.TLSEnabled() {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			limiter.Stop()
			return nil, fmt.Errorf("rpc: load tls keypair: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}

	srv := grpc.NewServer(opts...)
	srv.RegisterService(&RegistryServiceDesc, NewRegistryHandler(registry, logger))
	srv.RegisterService(&ChatServiceDesc, NewChatHandler(chat, logger))

	return &Server{Server: srv, limiter: limiter}, nil
}

// Stop closes every connection immediately.
func (s *Server) Stop() {
	s.Server.Stop()
	s.limiter.Stop()
}

// GracefulStop waits for in-flight calls to finish.
func (s *Server) GracefulStop() {
	s.Server.GracefulStop()
	s.limiter.Stop()
}
