package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tcpchat/internal/auth"
	"github.com/heartmarshall/tcpchat/internal/domain"
)

// Authenticate verifies a (user, token) pair against the credential store.
// Unknown users and mismatching tokens yield ErrUnauthorized; any other store
// failure is returned wrapped so the caller can report it as internal.
func (s *Service) Authenticate(ctx context.Context, userID uuid.UUID, token string) error {
	if userID == uuid.Nil || token == "" {
		return domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.Authenticate: %w", err)
	}

	if !auth.TokensEqual(user.AuthToken, token) {
		return domain.ErrUnauthorized
	}
	return nil
}
