package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/dmitrijs2005/tierforum/internal/server/gate"
	"github.com/dmitrijs2005/tierforum/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC statuses. Anything unrecognised is
// logged and reported as a bare internal error.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var denied *gate.DeniedError
	if errors.As(err, &denied) {
		switch denied.Kind {
		case gate.DenialUnauthenticated:
			return status.Error(codes.Unauthenticated, denied.Message)
		case gate.DenialForbidden:
			return status.Error(codes.PermissionDenied, denied.Message)
		case gate.DenialNotFound:
			return status.Error(codes.NotFound, denied.Message)
		}
	}

	var invalid *services.ValidationError
	if errors.As(err, &invalid) {
		return status.Error(codes.InvalidArgument, invalid.Message)
	}

	var conflict *services.ConflictError
	if errors.As(err, &conflict) {
		return status.Error(codes.AlreadyExists, conflict.Message)
	}

	if errors.Is(err, common.ErrorInvalidCredentials) {
		return status.Error(codes.Unauthenticated, "Invalid email or password")
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
