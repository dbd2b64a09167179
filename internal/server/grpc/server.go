// Package grpc exposes the forum services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/tierforum/internal/logging"
	pb "github.com/dmitrijs2005/tierforum/internal/proto"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedForumServer
	address   string
	users     userService
	questions questionService
	answers   answerService
	logger    logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us userService, qs questionService, as answerService) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		questions: qs,
		answers:   as,
	}
}

// NewServer creates a grpc.Server with the forum service and its interceptors
// registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.authorizationInterceptor))
	srv := grpc.NewServer(opts...)
	pb.RegisterForumServer(srv, s)
	return srv
}

// Run listens on the configured address until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
