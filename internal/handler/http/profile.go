package http

import (
	"encoding/json"
	"net/http"

	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/utils"
	"github.com/traduzo/traduzo-backend/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.UserResponse{User: *user}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.ProfileService.Update(ctx, user.UserID, update)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("profile update failed")
		writeMappedError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.UserResponse{
		Message: "profile updated successfully",
		User:    updatedUser,
	}, http.StatusOK)
}

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var request models.AvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.ProfileService.UpdateAvatar(ctx, user.UserID, request.Avatar)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("avatar update failed")
		writeMappedError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.UserResponse{
		Message: "avatar updated successfully",
		User:    updatedUser,
	}, http.StatusOK)
}
