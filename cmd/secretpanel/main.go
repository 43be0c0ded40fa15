package main

import (
	"fmt"

	"github.com/mkarpenko/secretpanel/internal/adapter"
	"github.com/mkarpenko/secretpanel/internal/client"
	"github.com/mkarpenko/secretpanel/internal/config"
	"github.com/mkarpenko/secretpanel/internal/controller"
	"github.com/mkarpenko/secretpanel/internal/logger"
	"github.com/mkarpenko/secretpanel/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewPanelLogger("secretpanel")
	cfg, err := config.GetPanelConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// leave both interfaces nil when no address is configured: the
	// controller then runs in disabled mode and the panel renders a stub
	var store adapter.SecretStore
	var directory adapter.DirectoryService
	if cfg.Store.HTTPAddress != "" {
		httpStore, err := adapter.NewHTTPStore(adapter.HTTPStoreConfig{
			BaseURL: cfg.Store.HTTPAddress,
			APIKey:  cfg.Store.APIKey,
			Timeout: cfg.Store.RequestTimeout,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("create store adapter")
		}
		store = httpStore
		directory = httpStore
	}

	ctrl := controller.New(store, directory, controller.Options{
		PageSize:       cfg.Panel.PageSize,
		SearchPageSize: cfg.Panel.SearchPageSize,
		Logger:         log,
	})

	ui, err := tui.New(ctrl, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ctrl, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init panel app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("panel run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
