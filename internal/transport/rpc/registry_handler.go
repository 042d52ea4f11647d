package rpc

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/tcpchat/internal/domain"
)

type registryService interface {
	Register(ctx context.Context, creds domain.Credentials) (*domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthPair, error)
}

// RegistryHandler serves account registration and login.
type RegistryHandler struct {
	auth registryService
	log  *slog.Logger
}

var _ RegistryServer = (*RegistryHandler)(nil)

func NewRegistryHandler(auth registryService, logger *slog.Logger) *RegistryHandler {
	return &RegistryHandler{auth: auth, log: logger.With("handler", "registry")}
}

func (h *RegistryHandler) RegisterNewUser(ctx context.Context, in *UserCredentials) (*Empty, error) {
	if _, err := h.auth.Register(ctx, domain.Credentials{Username: in.Username, Password: in.Password}); err != nil {
		return nil, err
	}
	return &Empty{}, nil
}

func (h *RegistryHandler) LoginAsUser(ctx context.Context, in *UserCredentials) (*AuthPair, error) {
	pair, err := h.auth.Login(ctx, domain.Credentials{Username: in.Username, Password: in.Password})
	if err != nil {
		return nil, err
	}
	return &AuthPair{UserUUID: pair.UserID.String(), Token: pair.Token}, nil
}
