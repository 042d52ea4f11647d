// Package auth implements account registration, login and the credential
// check behind every authenticated Chat call.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tcpchat/internal/config"
	"github.com/heartmarshall/tcpchat/internal/domain"
)

// userRepo defines the credential store interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	UpdateAuthToken(ctx context.Context, id uuid.UUID, token string) error
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		cfg:   cfg,
	}
}
