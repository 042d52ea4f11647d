package interceptor

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/heartmarshall/tcpchat/pkg/ctxutil"
)

// RequestIDUnary tags each call with the client's x-request-id, or a fresh
// one, and echoes it in the response header.
func RequestIDUnary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id := requestID(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(MetadataRequestID, id))
		ctx = ctxutil.WithMethod(ctxutil.WithRequestID(ctx, id), info.FullMethod)
		return handler(ctx, req)
	}
}

// RequestIDStream is the streaming counterpart of RequestIDUnary.
func RequestIDStream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		id := requestID(ss.Context())
		_ = ss.SetHeader(metadata.Pairs(MetadataRequestID, id))
		ctx := ctxutil.WithMethod(ctxutil.WithRequestID(ss.Context(), id), info.FullMethod)
		return handler(srv, withContext(ss, ctx))
	}
}

func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(MetadataRequestID); len(vals) > 0 && vals[0] != "" {
			return vals[0]
		}
	}
	return uuid.New().String()
}
