package main

import (
	"context"
	"fmt"

	"github.com/traduzo/traduzo-backend/internal/adapter"
	"github.com/traduzo/traduzo-backend/internal/config"
	"github.com/traduzo/traduzo-backend/internal/handler"
	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/server"
	"github.com/traduzo/traduzo-backend/internal/service"
	"github.com/traduzo/traduzo-backend/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("traduzo-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	if cfg.IsDevTokenSignKey() {
		log.Warn().Msg("running with the development token sign key; set APP_TOKEN_SIGN_KEY in production")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	translator, err := adapter.NewLibreTranslateAdapter(cfg.Translator, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating translator adapter")
	}
	ocrReader := adapter.NewTesseractReader(cfg.OCR, log)

	services := service.NewServices(storages, translator, ocrReader, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
