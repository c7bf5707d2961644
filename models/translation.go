package models

import "time"

// TranslationHistory is a single translation performed by a user. Records
// are created on every successful translate call and are never mutated
// afterwards; they can only be deleted, individually or in bulk.
type TranslationHistory struct {
	// ID is the internal unique identifier of the history record.
	ID int64 `json:"id"`

	// UserID references the owning user. A record cannot exist without one.
	UserID int64 `json:"user_id"`

	// SourceText is the original text submitted for translation.
	SourceText string `json:"source_text"`

	// TranslatedText is the translation returned by the upstream service.
	TranslatedText string `json:"translated_text"`

	// SourceLanguage is the (possibly detected) language of SourceText.
	SourceLanguage string `json:"source_language"`

	// TargetLanguage is the language the text was translated into.
	TargetLanguage string `json:"target_language"`

	// CreatedAt is server-assigned and drives the newest-first ordering
	// of history listings.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the TranslationHistory model.
func (t TranslationHistory) TableName() string {
	return "translation_history"
}

// TranslationResult is the outcome of a proxied translation call.
type TranslationResult struct {
	TranslatedText   string `json:"translated_text"`
	DetectedLanguage string `json:"detected_language"`
}

// DetectionResult is the outcome of a proxied language-detection call.
// Confidence is the upstream score for the best candidate, in percent.
type DetectionResult struct {
	DetectedLanguage string  `json:"detected_language"`
	Confidence       float64 `json:"confidence"`
}
