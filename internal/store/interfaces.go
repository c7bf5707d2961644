package store

import (
	"context"

	"github.com/traduzo/traduzo-backend/models"
)

// UserRepository is the data-access contract for user accounts and their
// profile settings.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. A duplicate email maps to [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by exact (case-sensitive) email.
	// An empty result maps to [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by primary key.
	// An empty result maps to [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies a partial update to the user row. Nil fields of
	// update are left untouched; updated_at is always bumped. Returns the
	// updated record.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

// TranslationRepository is the data-access contract for per-user translation
// history records.
type TranslationRepository interface {
	// Save persists a new history record and returns it with server-assigned
	// fields populated.
	Save(ctx context.Context, record models.TranslationHistory) (models.TranslationHistory, error)

	// ListByUser returns the user's history ordered newest first.
	ListByUser(ctx context.Context, userID int64) ([]models.TranslationHistory, error)

	// Delete removes a single record owned by the user. A missing or
	// foreign-owned record maps to [ErrTranslationNotFound].
	Delete(ctx context.Context, userID, translationID int64) error

	// DeleteAllByUser removes every record owned by the user. Deleting an
	// already-empty history is not an error.
	DeleteAllByUser(ctx context.Context, userID int64) error
}
