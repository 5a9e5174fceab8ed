package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/eventsnap/eventsnap/internal/common"
)

// RequestIDInterceptor tags every unary call with a request ID and logs the
// outcome. Handlers and queue jobs pick the ID up from the context.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := common.RequestIDFromContext(ctx)
		if requestID == "" {
			requestID = uuid.NewString()
			ctx = common.WithRequestID(ctx, requestID)
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Error("rpc.failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Debug("rpc.ok",
			"method", info.FullMethod,
			"request_id", requestID,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}
