package models

// AuthResponse is returned by the register and login endpoints. Token is the
// compact JWS string the client must present as a bearer credential.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// UserResponse wraps a user view, optionally with a status message.
type UserResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// HistoryResponse wraps the caller's translation history, newest first.
type HistoryResponse struct {
	Translations []TranslationHistory `json:"translations"`
}

// OCRResponse carries the text extracted from an uploaded image.
type OCRResponse struct {
	OriginalText string `json:"original_text"`
}

// MessageResponse is a bare status message body.
type MessageResponse struct {
	Message string `json:"message"`
}
