package handler

import (
	"github.com/traduzo/traduzo-backend/internal/config"
	"github.com/traduzo/traduzo-backend/internal/handler/http"
	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
