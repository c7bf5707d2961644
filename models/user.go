package models

import "time"

// User represents an account entity used for authentication, authorization
// and per-user preferences. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier used during authentication.
	// Comparisons are exact (case-sensitive).
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// PreferredLanguage is the default target language for translations.
	PreferredLanguage string `json:"preferred_language"`

	// Theme is the UI theme preference ("light" or "dark").
	Theme string `json:"theme"`

	// Notifications reports whether the user wants notifications enabled.
	Notifications bool `json:"notifications"`

	// AutoDetectLanguage reports whether the source language should be
	// detected automatically on translate requests.
	AutoDetectLanguage bool `json:"auto_detect_language"`

	// AvatarURL is an optional avatar image, stored either as an external
	// URL or a base64 data URI. Size is bounded at the API boundary.
	AvatarURL string `json:"avatar_url,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ProfileUpdate describes a partial profile modification. Nil fields are
// left untouched; non-nil fields overwrite the stored value.
type ProfileUpdate struct {
	Name               *string `json:"name,omitempty"`
	Email              *string `json:"email,omitempty"`
	PreferredLanguage  *string `json:"preferred_language,omitempty"`
	Theme              *string `json:"theme,omitempty"`
	Notifications      *bool   `json:"notifications,omitempty"`
	AutoDetectLanguage *bool   `json:"auto_detect_language,omitempty"`
	AvatarURL          *string `json:"avatar_url,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil &&
		p.Email == nil &&
		p.PreferredLanguage == nil &&
		p.Theme == nil &&
		p.Notifications == nil &&
		p.AutoDetectLanguage == nil &&
		p.AvatarURL == nil
}
