// Package interceptor holds the gRPC server interceptors: request IDs,
// logging and tracing, panic recovery, authentication and rate limiting.
package interceptor

import (
	"context"

	"google.golang.org/grpc"
)

// Metadata keys understood by the server.
const (
	MetadataUserUUID  = "user_uuid"
	MetadataAuthToken = "auth_token"
	MetadataRequestID = "x-request-id"
)

// serverStream overrides the context of a wrapped stream.
type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *serverStream) Context() context.Context {
	return s.ctx
}

func withContext(ss grpc.ServerStream, ctx context.Context) grpc.ServerStream {
	return &serverStream{ServerStream: ss, ctx: ctx}
}
