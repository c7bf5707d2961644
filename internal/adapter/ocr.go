package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/traduzo/traduzo-backend/internal/config"
	"github.com/traduzo/traduzo-backend/internal/logger"
)

// tesseractReader is the gosseract-backed implementation of [OCRReader].
//
// gosseract clients are not safe for concurrent use, so a fresh client is
// created per call and closed when the call returns.
type tesseractReader struct {
	languages []string
	logger    *logger.Logger
}

// NewTesseractReader constructs an [OCRReader] recognising the languages
// listed in cfg.Languages ("+"-separated Tesseract codes, e.g. "eng+por").
func NewTesseractReader(cfg config.OCR, logger *logger.Logger) OCRReader {
	languages := make([]string, 0)
	for _, lang := range strings.Split(cfg.Languages, "+") {
		if lang = strings.TrimSpace(lang); lang != "" {
			languages = append(languages, lang)
		}
	}

	return &tesseractReader{languages: languages, logger: logger}
}

// ExtractText implements [OCRReader]. It runs Tesseract over the image bytes
// and returns the recognised text with surrounding whitespace trimmed.
// Engine failures map to [ErrOCRFailed].
func (r *tesseractReader) ExtractText(ctx context.Context, image []byte) (string, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(image) == 0 {
		return "", ErrEmptyImage
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(r.languages) > 0 {
		if err := client.SetLanguage(r.languages...); err != nil {
			log.Err(err).Str("func", "*tesseractReader.ExtractText").Msg("error configuring OCR languages")
			return "", fmt.Errorf("%w: %w", ErrOCRFailed, err)
		}
	}

	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("%w: %w", ErrOCRFailed, err)
	}

	text, err := client.Text()
	if err != nil {
		log.Err(err).Str("func", "*tesseractReader.ExtractText").Msg("error running OCR")
		return "", fmt.Errorf("%w: %w", ErrOCRFailed, err)
	}

	return strings.TrimSpace(text), nil
}
