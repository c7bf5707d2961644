package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/service"
	"github.com/traduzo/traduzo-backend/internal/store"
	"github.com/traduzo/traduzo-backend/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], resolves the account
// behind the token subject and stores the *models.User in the request context
// under [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases, each with its own message so clients can react to expiry:
//   - The "Authorization" header is absent or not of the "Bearer <token>"
//     shape ([ErrEmptyAuthorizationHeader] / [ErrInvalidAuthorizationHeader]).
//   - The token has expired ([service.ErrTokenExpired]).
//   - The token is otherwise invalid or cannot be parsed.
//   - The account behind the token subject no longer exists.
//
// Raw token values are never written to the log.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Send()
			writeError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				log.Warn().Msg("token expired")
				writeError(w, service.ErrTokenExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Warn().Msg("invalid token")
				writeError(w, service.ErrTokenInvalid.Error(), http.StatusUnauthorized)
				return
			}
		}

		user, err := h.services.AuthService.UserByID(ctx, token.UserID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrUserNotFound):
				log.Warn().Int64("id", token.UserID).Msg("user behind token not found")
				writeError(w, "user not found", http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error resolving user behind token")
				writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, &user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
