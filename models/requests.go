package models

// RegisterRequest is the JSON body of POST /api/register.
// All three fields are required.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TranslateRequest is the JSON body of POST /api/translate.
// Source defaults to "auto" and Target to the caller's preferred language
// when omitted.
type TranslateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
}

// DetectRequest is the JSON body of POST /api/detect.
type DetectRequest struct {
	Text string `json:"text"`
}

// AvatarRequest is the JSON body of POST /api/profile/avatar. Avatar is
// either a raw base64 string or a data URI ("data:image/...;base64,...").
type AvatarRequest struct {
	Avatar string `json:"avatar"`
}
