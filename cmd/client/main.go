package main

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/internal/client"
	"github.com/MKhiriev/salestrak-pa/internal/config"
	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/internal/service"
	"github.com/MKhiriev/salestrak-pa/internal/store"
	"github.com/MKhiriev/salestrak-pa/internal/tui"
	"github.com/MKhiriev/salestrak-pa/models"
)

// Set with -ldflags "-X main.buildVersion=...". A plain go build reports "dev".
var (
	buildVersion = "dev"
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("salestrak-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("salestrak-client", cfg.App.LogPath)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)

	appInfo, err := service.NewAppInfoService(cfg.App, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create app info service")
	}

	ui, err := tui.New(services, appInfo, tui.Options{
		DownloadDir: cfg.Storage.DownloadDir,
		LinkBase:    serverAdapter.BaseURL(),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	for _, row := range models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Rows() {
		fmt.Printf("Build %s: %s\n", strings.ToLower(row.Label), row.Value)
	}
}
