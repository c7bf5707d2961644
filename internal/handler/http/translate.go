package http

import (
	"encoding/json"
	"net/http"

	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/utils"
	"github.com/traduzo/traduzo-backend/models"
)

func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var request models.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.TranslationService.Translate(ctx, *user, request)
	if err != nil {
		log.Err(err).Msg("translation failed")
		writeMappedError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) detect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.TranslationService.Detect(ctx, request.Text)
	if err != nil {
		log.Err(err).Msg("language detection failed")
		writeMappedError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
