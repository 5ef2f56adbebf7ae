package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/client"
	"github.com/MKhiriev/go-env-keeper/internal/config"
	myHTTP "github.com/MKhiriev/go-env-keeper/internal/handler/http"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/server"
	"github.com/MKhiriev/go-env-keeper/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("env-proxyd")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

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

	handler, err := myHTTP.NewHandler(envService, myHTTP.Options{
		DefaultContext:  cfg.Resolve.Context,
		AccountID:       accountID,
		SiteID:          cfg.Site.SiteID,
		LocalEnv:        client.LocalEnvFromEnviron(os.Environ()),
		UpstreamURL:     cfg.Server.UpstreamURL,
		UpstreamTimeout: cfg.Server.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
