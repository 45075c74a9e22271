// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tax-keeper/internal/adapter"
	"github.com/MKhiriev/go-tax-keeper/internal/client/cli"
	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/service"
	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/models"
)

// App runs one command of the command-line client.
type App struct {
	cli  *cli.CLI
	args []string
}

// NewApp creates the client for the given command-line arguments, without
// the program name.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, args []string, logger *logger.Logger, opts ...cli.Option) *App {
	return &App{
		cli:  cli.New(*cfg, newServices(logger), buildInfo, logger, opts...),
		args: args,
	}
}

// Run executes the command. An interrupt cancels requests in flight.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.cli.Execute(ctx, a.args)
}

func newServices(logger *logger.Logger) cli.ServicesFactory {
	return func(cfg config.ClientConfig) (*service.ClientServices, error) {
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
		if err != nil {
			return nil, err
		}

		localStorage := store.NewClientStorages(cfg, logger)
		return service.NewClientServices(localStorage, serverAdapter, cfg.Adapter.HTTPAddress, logger), nil
	}
}
