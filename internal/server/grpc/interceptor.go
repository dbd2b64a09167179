package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tierforum/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const authorizationKey ctxKey = "authorization"

// authorizationInterceptor passes the raw authorization metadata value on to
// the handlers. It never rejects a call: whether a token is needed, and
// whether it is good enough, is up to the gate.
func (s *GRPCServer) authorizationInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AuthorizationHeaderName); len(values) > 0 {
			ctx = context.WithValue(ctx, authorizationKey, values[0])
		}
	}

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "rpc",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start))

	return resp, err
}

func authorizationFromContext(ctx context.Context) string {
	v, _ := ctx.Value(authorizationKey).(string)
	return v
}
