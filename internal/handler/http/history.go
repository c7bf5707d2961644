package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/utils"
	"github.com/traduzo/traduzo-backend/models"
)

func (h *Handler) listTranslations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	translations, err := h.services.TranslationService.History(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("history lookup failed")
		writeMappedError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.HistoryResponse{Translations: translations}, http.StatusOK)
}

func (h *Handler) deleteTranslation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	translationID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid translation id")
		writeError(w, "invalid translation id", http.StatusBadRequest)
		return
	}

	if err = h.services.TranslationService.DeleteHistory(ctx, user.UserID, translationID); err != nil {
		log.Err(err).Int64("translation_id", translationID).Msg("history record deletion failed")
		writeMappedError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "translation removed successfully"}, http.StatusOK)
}

func (h *Handler) clearTranslations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.services.TranslationService.ClearHistory(ctx, user.UserID); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("history clearing failed")
		writeMappedError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "translation history cleared successfully"}, http.StatusOK)
}
