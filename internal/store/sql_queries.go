package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/traduzo/traduzo-backend/models"
)

const (
	userColumns = `id, name, email, password_hash, preferred_language, theme,
    notifications, auto_detect_language, avatar_url, created_at, updated_at`

	createUser = `INSERT INTO users (name, email, password_hash, preferred_language, theme,
    notifications, auto_detect_language, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	historyColumns = `id, user_id, source_text, translated_text, source_language, target_language, created_at`

	saveTranslation = `INSERT INTO translation_history (
        user_id,
        source_text,
        translated_text,
        source_language,
        target_language,
        created_at
    ) VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + historyColumns + `;`

	listTranslationsByUser = `SELECT ` + historyColumns + `
    FROM translation_history
    WHERE user_id = $1
    ORDER BY created_at DESC, id DESC;`

	deleteTranslation = `DELETE FROM translation_history
    WHERE id = $1 AND user_id = $2;`

	deleteAllTranslationsByUser = `DELETE FROM translation_history
    WHERE user_id = $1;`
)

// buildProfileUpdateQuery dynamically builds the partial UPDATE for a user
// profile. Only non-nil fields of update produce SET clauses; updated_at is
// always bumped. Returns [ErrBuildingSQLQuery] when update carries no fields.
func buildProfileUpdateQuery(userID int64, update models.ProfileUpdate, now time.Time) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", now)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.PreferredLanguage != nil {
		builder = builder.Set("preferred_language", *update.PreferredLanguage)
	}
	if update.Theme != nil {
		builder = builder.Set("theme", *update.Theme)
	}
	if update.Notifications != nil {
		builder = builder.Set("notifications", *update.Notifications)
	}
	if update.AutoDetectLanguage != nil {
		builder = builder.Set("auto_detect_language", *update.AutoDetectLanguage)
	}
	if update.AvatarURL != nil {
		builder = builder.Set("avatar_url", *update.AvatarURL)
	}

	return builder.
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}
