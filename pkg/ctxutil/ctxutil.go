// Package ctxutil carries per-call identity through context.Context.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	methodKey    ctxKey = "rpc_method"
)

// WithUserID stores the verified caller in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the verified caller from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithMethod stores the full RPC method name in the context.
func WithMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, methodKey, method)
}

// MethodFromCtx extracts the RPC method name, or "" if absent.
func MethodFromCtx(ctx context.Context) string {
	m, _ := ctx.Value(methodKey).(string)
	return m
}

// LogAttrs returns the identity attributes present in ctx, ready to be
// passed to slog.Logger.LogAttrs or With.
func LogAttrs(ctx context.Context) []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if m := MethodFromCtx(ctx); m != "" {
		attrs = append(attrs, slog.String("method", m))
	}
	if uid, ok := UserIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("user_id", uid.String()))
	}
	return attrs
}
