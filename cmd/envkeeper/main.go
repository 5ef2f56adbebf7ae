package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/client"
	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/tui"
	"github.com/MKhiriev/go-env-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("env-keeper")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// stdout принадлежит TUI
	if cfg.LogFile != "" {
		log = logger.NewFileLogger("env-keeper", cfg.LogFile)
	}

	accountID := cfg.Site.AccountID
	if accountID == "" && cfg.API.Token != "" {
		accountID, err = adapter.AccountIDFromToken(cfg.API.Token)
		if err != nil {
			log.Warn().Err(err).Msg("no account id in token, resolving local sources only")
		}
	}

	store := adapter.NewHTTPEnvStore(adapter.EnvStoreConfig{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
	}, log)

	envService := service.NewEnvService(store, log)

	ui, err := tui.New(envService, tui.Options{
		Context:   cfg.Resolve.Context,
		Scope:     models.Scope(cfg.Resolve.Scope),
		AccountID: accountID,
		SiteID:    cfg.Site.SiteID,
		LocalEnv:  client.LocalEnvFromEnviron(os.Environ()),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
