package interceptor

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/heartmarshall/tcpchat/pkg/ctxutil"
)

const tracerName = "github.com/heartmarshall/tcpchat/internal/transport/rpc/interceptor"

// LoggingUnary opens a server span for each call and logs its outcome with
// the method, status code, duration and request id.
func LoggingUnary(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, span := startSpan(ctx, info.FullMethod)
		defer span.End()

		start := time.Now()
		resp, err := handler(ctx, req)
		finish(ctx, logger, span, "grpc.unary", start, err)
		return resp, err
	}
}

// LoggingStream is the streaming counterpart of LoggingUnary. The entry is
// written when the stream ends.
func LoggingStream(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, span := startSpan(ss.Context(), info.FullMethod)
		defer span.End()

		start := time.Now()
		err := handler(srv, withContext(ss, ctx))
		finish(ctx, logger, span, "grpc.stream", start, err)
		return err
	}
}

func startSpan(ctx context.Context, method string) (context.Context, trace.Span) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		ctx = otel.GetTextMapPropagator().Extract(ctx, metadataCarrier(md))
	}
	return otel.Tracer(tracerName).Start(ctx, method,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("rpc.system", "grpc"),
			attribute.String("rpc.method", method),
			attribute.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		),
	)
}

func finish(ctx context.Context, logger *slog.Logger, span trace.Span, msg string, start time.Time, err error) {
	code := status.Code(err)
	span.SetAttributes(attribute.String("rpc.grpc.status_code", code.String()))
	if err != nil {
		span.SetStatus(otelcodes.Error, status.Convert(err).Message())
	}

	attrs := append(ctxutil.LogAttrs(ctx),
		slog.String("code", code.String()),
		slog.Duration("duration", time.Since(start)),
	)

	level := slog.LevelInfo
	switch code {
	case codes.OK, codes.Canceled:
	case codes.Internal, codes.Unknown, codes.DataLoss:
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	logger.LogAttrs(ctx, level, msg, attrs...)
}

// metadataCarrier adapts incoming gRPC metadata to propagation.TextMapCarrier.
type metadataCarrier metadata.MD

func (c metadataCarrier) Get(key string) string {
	if vals := metadata.MD(c).Get(key); len(vals) > 0 {
		return vals[0]
	}
	return ""
}

func (c metadataCarrier) Set(key, value string) {
	metadata.MD(c).Set(key, value)
}

func (c metadataCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
