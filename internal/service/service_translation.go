package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/traduzo/traduzo-backend/internal/adapter"
	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/store"
	"github.com/traduzo/traduzo-backend/models"
)

// translationService is the concrete implementation of TranslationService.
// It fronts the translation engine and the OCR reader and keeps each user's
// translation history in the TranslationRepository.
type translationService struct {
	translationRepository store.TranslationRepository
	translator            adapter.Translator
	ocrReader             adapter.OCRReader
	logger                *logger.Logger
}

// NewTranslationService constructs a TranslationService over the given
// repository and outbound adapters.
func NewTranslationService(
	translationRepository store.TranslationRepository,
	translator adapter.Translator,
	ocrReader adapter.OCRReader,
	logger *logger.Logger,
) TranslationService {
	return &translationService{
		translationRepository: translationRepository,
		translator:            translator,
		ocrReader:             ocrReader,
		logger:                logger,
	}
}

// Translate runs the text through the translation engine and records the
// result in the caller's history.
//
// Request defaults: an empty source becomes "auto" (engine-side detection)
// and an empty target becomes the user's preferred language. The history
// record stores the language the engine actually detected, not the "auto"
// placeholder. Nothing is recorded when the engine call fails.
func (t *translationService) Translate(ctx context.Context, user models.User, request models.TranslateRequest) (models.TranslationResult, error) {
	log := logger.FromContext(ctx)

	text := strings.TrimSpace(request.Text)
	if text == "" {
		return models.TranslationResult{}, ErrInvalidDataProvided
	}

	source := request.Source
	if source == "" {
		source = "auto"
	}
	target := request.Target
	if target == "" {
		target = user.PreferredLanguage
	}
	if target == "" {
		target = defaultPreferredLanguage
	}

	result, err := t.translator.Translate(ctx, text, source, target)
	if err != nil {
		log.Err(err).Str("func", "*translationService.Translate").Msg("translation failed")
		return models.TranslationResult{}, err
	}

	_, err = t.translationRepository.Save(ctx, models.TranslationHistory{
		UserID:         user.UserID,
		SourceText:     text,
		TranslatedText: result.TranslatedText,
		SourceLanguage: result.DetectedLanguage,
		TargetLanguage: target,
	})
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("saving history record failed")
		return models.TranslationResult{}, fmt.Errorf("saving history record failed: %w", err)
	}

	return result, nil
}

// Detect asks the engine for the most confident language guess.
func (t *translationService) Detect(ctx context.Context, text string) (models.DetectionResult, error) {
	log := logger.FromContext(ctx)

	text = strings.TrimSpace(text)
	if text == "" {
		return models.DetectionResult{}, ErrInvalidDataProvided
	}

	result, err := t.translator.Detect(ctx, text)
	if err != nil {
		log.Err(err).Str("func", "*translationService.Detect").Msg("language detection failed")
		return models.DetectionResult{}, err
	}

	return result, nil
}

// History returns the caller's translation records, newest first.
func (t *translationService) History(ctx context.Context, userID int64) ([]models.TranslationHistory, error) {
	return t.translationRepository.ListByUser(ctx, userID)
}

// DeleteHistory removes a single record owned by userID.
// Records owned by other users look absent (store.ErrTranslationNotFound).
func (t *translationService) DeleteHistory(ctx context.Context, userID, translationID int64) error {
	return t.translationRepository.Delete(ctx, userID, translationID)
}

// ClearHistory removes every record owned by userID.
func (t *translationService) ClearHistory(ctx context.Context, userID int64) error {
	return t.translationRepository.DeleteAllByUser(ctx, userID)
}

// ExtractText runs OCR over the image and normalises the recognised text:
// line breaks and repeated whitespace collapse to single spaces.
func (t *translationService) ExtractText(ctx context.Context, image []byte) (string, error) {
	log := logger.FromContext(ctx)

	if len(image) == 0 {
		return "", ErrInvalidDataProvided
	}

	text, err := t.ocrReader.ExtractText(ctx, image)
	if err != nil {
		log.Err(err).Str("func", "*translationService.ExtractText").Msg("text extraction failed")
		return "", err
	}

	return strings.Join(strings.Fields(text), " "), nil
}
