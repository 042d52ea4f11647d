package interceptor

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/heartmarshall/tcpchat/internal/domain"
	"github.com/heartmarshall/tcpchat/pkg/ctxutil"
)

// errBadCredentials is the single answer to every rejected credential so a
// client cannot tell which part was wrong.
var errBadCredentials = status.Error(codes.Unauthenticated, "invalid or missing credentials")

type authenticator interface {
	Authenticate(ctx context.Context, userID uuid.UUID, token string) error
}

// Auth gates every method whose full name starts with one of the protected
// service prefixes (e.g. "/tcpchat.Chat/"). Other methods pass through.
type Auth struct {
	auth      authenticator
	log       *slog.Logger
	protected []string
}

// NewAuth creates an Auth interceptor for the given service names.
func NewAuth(auth authenticator, logger *slog.Logger, services ...string) *Auth {
	protected := make([]string, len(services))
	for i, s := range services {
		protected[i] = "/" + s + "/"
	}
	return &Auth{auth: auth, log: logger, protected: protected}
}

// Unary returns the unary interceptor.
func (a *Auth) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !a.guards(info.FullMethod) {
			return handler(ctx, req)
		}
		ctx, err := a.verify(ctx)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// Stream returns the streaming interceptor.
func (a *Auth) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if !a.guards(info.FullMethod) {
			return handler(srv, ss)
		}
		ctx, err := a.verify(ss.Context())
		if err != nil {
			return err
		}
		return handler(srv, withContext(ss, ctx))
	}
}

func (a *Auth) guards(method string) bool {
	for _, p := range a.protected {
		if strings.HasPrefix(method, p) {
			return true
		}
	}
	return false
}

// verify checks the credentials in the incoming metadata and returns a
// context that carries the caller and no longer carries the token.
func (a *Auth) verify(ctx context.Context) (context.Context, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	md = md.Copy()
	rawUser := strings.TrimSpace(first(md, MetadataUserUUID))
	// The token is compared byte for byte; surrounding whitespace is not stripped.
	token := first(md, MetadataAuthToken)
	md.Delete(MetadataAuthToken)
	ctx = metadata.NewIncomingContext(ctx, md)

	userID, err := uuid.Parse(rawUser)
	if rawUser == "" || token == "" || err != nil {
		a.log.WarnContext(ctx, "authentication failed",
			slog.String("reason", "missing or malformed credentials"),
			slog.String("method", ctxutil.MethodFromCtx(ctx)))
		return ctx, errBadCredentials
	}

	if err := a.auth.Authenticate(ctx, userID, token); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			a.log.WarnContext(ctx, "authentication failed",
				slog.String("reason", "rejected"),
				slog.String("user_id", userID.String()))
			return ctx, errBadCredentials
		}
		a.log.ErrorContext(ctx, "credential store error",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return ctx, status.Error(codes.Internal, "internal error")
	}

	a.log.DebugContext(ctx, "authenticated", slog.String("user_id", userID.String()))
	return ctxutil.WithUserID(ctx, userID), nil
}

func first(md metadata.MD, key string) string {
	if vals := md.Get(key); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
