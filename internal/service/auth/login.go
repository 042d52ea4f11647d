package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tcpchat/internal/auth"
	"github.com/heartmarshall/tcpchat/internal/domain"
)

// Login checks the password and rotates the user's token. Unknown usernames
// and wrong passwords both yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthPair, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "login for unknown user", slog.String("username", creds.Username))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, creds.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	if !ok {
		s.log.WarnContext(ctx, "login with wrong password", slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	if err := s.users.UpdateAuthToken(ctx, user.ID, token); err != nil {
		return nil, fmt.Errorf("auth.Login store token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return &domain.AuthPair{UserID: user.ID, Token: token}, nil
}
