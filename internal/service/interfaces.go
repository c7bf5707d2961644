package service

import (
	"context"

	"github.com/traduzo/traduzo-backend/models"
)

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	UserByID(ctx context.Context, userID int64) (models.User, error)
}

type ProfileService interface {
	Update(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
	UpdateAvatar(ctx context.Context, userID int64, avatar string) (models.User, error)
}

type TranslationService interface {
	Translate(ctx context.Context, user models.User, request models.TranslateRequest) (models.TranslationResult, error)
	Detect(ctx context.Context, text string) (models.DetectionResult, error)
	History(ctx context.Context, userID int64) ([]models.TranslationHistory, error)
	DeleteHistory(ctx context.Context, userID, translationID int64) error
	ClearHistory(ctx context.Context, userID int64) error
	ExtractText(ctx context.Context, image []byte) (string, error)
}
