package service

import (
	"context"

	"github.com/traduzo/traduzo-backend/models"
)

// Func-field mocks for the store and adapter interfaces. Unset funcs return
// zero values so each test only wires what it asserts on.

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn   func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, update)
	}
	return models.User{}, nil
}

type mockTranslationRepository struct {
	saveFn            func(ctx context.Context, record models.TranslationHistory) (models.TranslationHistory, error)
	listByUserFn      func(ctx context.Context, userID int64) ([]models.TranslationHistory, error)
	deleteFn          func(ctx context.Context, userID, translationID int64) error
	deleteAllByUserFn func(ctx context.Context, userID int64) error
}

func (m *mockTranslationRepository) Save(ctx context.Context, record models.TranslationHistory) (models.TranslationHistory, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, record)
	}
	return record, nil
}

func (m *mockTranslationRepository) ListByUser(ctx context.Context, userID int64) ([]models.TranslationHistory, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTranslationRepository) Delete(ctx context.Context, userID, translationID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, translationID)
	}
	return nil
}

func (m *mockTranslationRepository) DeleteAllByUser(ctx context.Context, userID int64) error {
	if m.deleteAllByUserFn != nil {
		return m.deleteAllByUserFn(ctx, userID)
	}
	return nil
}

type mockTranslator struct {
	translateFn func(ctx context.Context, text, source, target string) (models.TranslationResult, error)
	detectFn    func(ctx context.Context, text string) (models.DetectionResult, error)
}

func (m *mockTranslator) Translate(ctx context.Context, text, source, target string) (models.TranslationResult, error) {
	if m.translateFn != nil {
		return m.translateFn(ctx, text, source, target)
	}
	return models.TranslationResult{}, nil
}

func (m *mockTranslator) Detect(ctx context.Context, text string) (models.DetectionResult, error) {
	if m.detectFn != nil {
		return m.detectFn(ctx, text)
	}
	return models.DetectionResult{}, nil
}

type mockOCRReader struct {
	extractTextFn func(ctx context.Context, image []byte) (string, error)
}

func (m *mockOCRReader) ExtractText(ctx context.Context, image []byte) (string, error) {
	if m.extractTextFn != nil {
		return m.extractTextFn(ctx, image)
	}
	return "", nil
}
