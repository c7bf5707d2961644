package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traduzo/traduzo-backend/internal/service"
	"github.com/traduzo/traduzo-backend/internal/store"
	"github.com/traduzo/traduzo-backend/internal/utils"
	"github.com/traduzo/traduzo-backend/models"
)

// nextSpy records whether the wrapped handler ran and what user it saw.
type nextSpy struct {
	called bool
	user   *models.User
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.user, _ = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{UserID: 7}, nil
		},
		userByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Email: "ana@example.com"}, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, spy.called)
	require.NotNil(t, spy.user)
	assert.Equal(t, int64(7), spy.user.UserID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	tests := []struct {
		name   string
		header string
	}{
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "no token", header: "Bearer "},
		{name: "lowercase scheme", header: "bearer some.jwt.token"},
		{name: "token only", header: "some.jwt.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &nextSpy{}
			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			h.auth(spy.handler()).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, spy.called)
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenExpired
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	h.auth((&nextSpy{}).handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.MessageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, service.ErrTokenExpired.Error(), resp.Message)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenInvalid
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer forged.jwt.token")
	rec := httptest.NewRecorder()

	h.auth((&nextSpy{}).handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.MessageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, service.ErrTokenInvalid.Error(), resp.Message)
}

func TestAuthMiddleware_UserGone(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 404}, nil
		},
		userByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth((&nextSpy{}).handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.MessageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "user not found", resp.Message)
}
