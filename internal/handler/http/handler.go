package http

import (
	"net/http"

	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/service"
	"github.com/traduzo/traduzo-backend/internal/utils"
	"github.com/traduzo/traduzo-backend/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeError sends a JSON error body of the form {"message": ...}.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
