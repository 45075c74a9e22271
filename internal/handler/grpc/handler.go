// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service so that load
// balancers and orchestrators can probe the server without going through
// the REST API.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported by the health service next to the
// overall ("") server status.
const ServiceName = "gotaxkeeper.v1.TaxKeeper"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register installs the health service on s and marks the server as
// serving.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	log := h.logger.Info()
	if h.services != nil && h.services.AppInfoService != nil {
		log = log.Str("version", h.services.AppInfoService.GetAppVersion(context.Background()))
	}
	log.Msg("gRPC health service registered")
}

// Shutdown reports NOT_SERVING to every watcher. Further status updates
// are ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
