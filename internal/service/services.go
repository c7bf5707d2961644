package service

import (
	"github.com/traduzo/traduzo-backend/internal/adapter"
	"github.com/traduzo/traduzo-backend/internal/config"
	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/store"
)

type Services struct {
	AuthService        AuthService
	ProfileService     ProfileService
	TranslationService TranslationService
}

func NewServices(storages *store.Storages, translator adapter.Translator, ocrReader adapter.OCRReader, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.App, logger),
		ProfileService:     NewProfileService(storages.UserRepository, logger),
		TranslationService: NewTranslationService(storages.TranslationRepository, translator, ocrReader, logger),
	}
}
