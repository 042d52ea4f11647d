package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tcpchat/internal/auth"
	"github.com/heartmarshall/tcpchat/internal/domain"
)

// Register creates a new account. A taken username yields ErrAlreadyExists.
// The account gets a random token that is only revealed by Login.
func (s *Service) Register(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(creds.Password, s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		ID:           uuid.New(),
		Username:     creds.Username,
		PasswordHash: hash,
		AuthToken:    token,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: username taken: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	return user, nil
}
