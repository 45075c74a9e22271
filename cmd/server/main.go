// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/events"
	"github.com/MKhiriev/go-tax-keeper/internal/handler"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-tax-keeper/internal/server"
	"github.com/MKhiriev/go-tax-keeper/internal/service"
	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-tax-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	publisher, err := events.NewPublisher(cfg.Broker, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to the broker")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Err(err).Msg("error closing event publisher")
		}
	}()

	limiter := ratelimit.NewLimiter(cfg.Cache, log)
	defer func() {
		if err := limiter.Close(); err != nil {
			log.Err(err).Msg("error closing rate limiter")
		}
	}()

	services, err := service.NewServices(storages, publisher, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, limiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
	log.Info().Msg("server stopped")
}
