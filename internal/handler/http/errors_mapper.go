package http

import (
	"errors"
	"net/http"

	"github.com/traduzo/traduzo-backend/internal/adapter"
	"github.com/traduzo/traduzo-backend/internal/service"
	"github.com/traduzo/traduzo-backend/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenExpired:        http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusUnauthorized,
	service.ErrInvalidAvatar:       http.StatusBadRequest,
	service.ErrAvatarTooLarge:      http.StatusBadRequest,

	// duplicate-email registration is a client error, not a conflict
	store.ErrEmailAlreadyExists:  http.StatusBadRequest,
	store.ErrUserNotFound:        http.StatusNotFound,
	store.ErrTranslationNotFound: http.StatusNotFound,

	adapter.ErrEmptyImage:            http.StatusBadRequest,
	adapter.ErrTranslatorUnavailable: http.StatusInternalServerError,
	adapter.ErrTranslatorResponse:    http.StatusInternalServerError,
	adapter.ErrNoDetection:           http.StatusInternalServerError,
	adapter.ErrOCRFailed:             http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeMappedError resolves the HTTP status for err and writes the error
// body. On 500 the body carries only the generic status text; the detailed
// error stays in the server-side log.
func writeMappedError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}
	writeError(w, message, status)
}
