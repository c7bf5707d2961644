package http

import (
	"encoding/json"
	"net/http"

	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/utils"
	"github.com/traduzo/traduzo-backend/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeMappedError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Message: "user registered successfully",
		Token:   token.SignedString,
		User:    registeredUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		log.Warn().Err(err).Msg("login failed")
		writeMappedError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Message: "login successful",
		Token:   token.SignedString,
		User:    foundUser,
	}, http.StatusOK)
}
