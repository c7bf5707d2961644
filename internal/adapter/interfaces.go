// Package adapter holds the outbound integrations of the backend: the
// LibreTranslate HTTP client used for translation and language detection,
// and the Tesseract-backed OCR reader used for image text extraction.
package adapter

import (
	"context"

	"github.com/traduzo/traduzo-backend/models"
)

// Translator is the outbound port to the machine-translation engine.
type Translator interface {
	// Translate converts text from source into target and reports the
	// detected source language when source is "auto".
	Translate(ctx context.Context, text, source, target string) (models.TranslationResult, error)

	// Detect returns the most confident language guess for text.
	Detect(ctx context.Context, text string) (models.DetectionResult, error)
}

// OCRReader extracts plain text from an image.
type OCRReader interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}
