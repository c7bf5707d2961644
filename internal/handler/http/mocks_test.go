package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/service"
	"github.com/traduzo/traduzo-backend/internal/utils"
	"github.com/traduzo/traduzo-backend/models"
)

// Func-field mocks for the service interfaces. Each method field can be
// overridden per test case; unset funcs return zero values.

type mockAuthService struct {
	registerFn    func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	userByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, request)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) UserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.userByIDFn != nil {
		return m.userByIDFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

type mockProfileService struct {
	updateFn       func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
	updateAvatarFn func(ctx context.Context, userID int64, avatar string) (models.User, error)
}

func (m *mockProfileService) Update(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, update)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockProfileService) UpdateAvatar(ctx context.Context, userID int64, avatar string) (models.User, error) {
	if m.updateAvatarFn != nil {
		return m.updateAvatarFn(ctx, userID, avatar)
	}
	return models.User{UserID: userID, AvatarURL: avatar}, nil
}

type mockTranslationService struct {
	translateFn     func(ctx context.Context, user models.User, request models.TranslateRequest) (models.TranslationResult, error)
	detectFn        func(ctx context.Context, text string) (models.DetectionResult, error)
	historyFn       func(ctx context.Context, userID int64) ([]models.TranslationHistory, error)
	deleteHistoryFn func(ctx context.Context, userID, translationID int64) error
	clearHistoryFn  func(ctx context.Context, userID int64) error
	extractTextFn   func(ctx context.Context, image []byte) (string, error)
}

func (m *mockTranslationService) Translate(ctx context.Context, user models.User, request models.TranslateRequest) (models.TranslationResult, error) {
	if m.translateFn != nil {
		return m.translateFn(ctx, user, request)
	}
	return models.TranslationResult{}, nil
}

func (m *mockTranslationService) Detect(ctx context.Context, text string) (models.DetectionResult, error) {
	if m.detectFn != nil {
		return m.detectFn(ctx, text)
	}
	return models.DetectionResult{}, nil
}

func (m *mockTranslationService) History(ctx context.Context, userID int64) ([]models.TranslationHistory, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTranslationService) DeleteHistory(ctx context.Context, userID, translationID int64) error {
	if m.deleteHistoryFn != nil {
		return m.deleteHistoryFn(ctx, userID, translationID)
	}
	return nil
}

func (m *mockTranslationService) ClearHistory(ctx context.Context, userID int64) error {
	if m.clearHistoryFn != nil {
		return m.clearHistoryFn(ctx, userID)
	}
	return nil
}

func (m *mockTranslationService) ExtractText(ctx context.Context, image []byte) (string, error) {
	if m.extractTextFn != nil {
		return m.extractTextFn(ctx, image)
	}
	return "", nil
}

// newTestHandler builds a Handler over the given service mocks. Nil mocks are
// replaced with zero-value ones so tests only wire what they assert on.
func newTestHandler(t *testing.T, auth *mockAuthService, profile *mockProfileService, translation *mockTranslationService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if profile == nil {
		profile = &mockProfileService{}
	}
	if translation == nil {
		translation = &mockTranslationService{}
	}

	return NewHandler(&service.Services{
		AuthService:        auth,
		ProfileService:     profile,
		TranslationService: translation,
	}, logger.Nop())
}

// withContextUser stores user in the request context the way the auth
// middleware would.
func withContextUser(r *http.Request, user *models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserCtxKey, user)
	return r.WithContext(ctx)
}

// decodeBody unmarshals a recorded JSON response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}
