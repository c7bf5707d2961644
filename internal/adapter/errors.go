package adapter

import "errors"

var (
	// ErrTranslatorUnavailable means the translation engine could not be
	// reached or did not answer in time.
	ErrTranslatorUnavailable = errors.New("translation service unavailable")

	// ErrTranslatorResponse means the engine answered but the response
	// could not be interpreted.
	ErrTranslatorResponse = errors.New("unexpected translation service response")

	// ErrNoDetection means the engine returned no language candidates.
	ErrNoDetection = errors.New("no language detected")

	// ErrOCRFailed means the OCR engine could not process the image.
	ErrOCRFailed = errors.New("text extraction failed")

	// ErrEmptyImage means no image bytes were supplied for extraction.
	ErrEmptyImage = errors.New("empty image")
)
