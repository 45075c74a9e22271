// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-tax-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	ln, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("addr", g.address).Msg("gRPC server failed to listen")
		return
	}
	g.serve(ln)
}

func (g *grpcServer) serve(ln net.Listener) {
	g.logger.Info().Str("addr", ln.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(ln); err != nil {
		g.logger.Err(err).Msg("gRPC server stopped unexpectedly")
	}
}

// Shutdown flips the health status before draining open calls.
func (g *grpcServer) Shutdown() {
	g.handler.Shutdown()
	g.server.GracefulStop()
	g.logger.Info().Msg("gRPC server stopped")
}
