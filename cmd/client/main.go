// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/go-tax-keeper/internal/client"
	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("go-tax-client", os.Stderr, os.Getenv("CLIENT_DEBUG") != "")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Args[1:], log)
	if err = app.Run(); err != nil {
		os.Exit(1)
	}
}
