package store

import (
	"context"
	"fmt"
	"time"

	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/models"
)

// translationRepository is the SQL-backed implementation of
// [TranslationRepository] over the "translation_history" table.
type translationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTranslationRepository constructs a [TranslationRepository] backed by the
// provided database connection and logger.
func NewTranslationRepository(db *DB, logger *logger.Logger) TranslationRepository {
	logger.Debug().Msg("creating translation repository")
	return &translationRepository{
		db:     db,
		logger: logger,
	}
}

// Save persists a new history record and returns the stored representation,
// including the server-assigned id.
func (r *translationRepository) Save(ctx context.Context, record models.TranslationHistory) (models.TranslationHistory, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveTranslation,
		record.UserID, record.SourceText, record.TranslatedText,
		record.SourceLanguage, record.TargetLanguage,
		time.Now().UTC())

	var saved models.TranslationHistory
	err := row.Scan(
		&saved.ID, &saved.UserID, &saved.SourceText, &saved.TranslatedText,
		&saved.SourceLanguage, &saved.TargetLanguage, &saved.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*translationRepository.Save").Msg("error persisting history record")
		return models.TranslationHistory{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// ListByUser returns every history record owned by userID, newest first
// (created_at DESC with id DESC as a tiebreak for same-instant records).
func (r *translationRepository) ListByUser(ctx context.Context, userID int64) ([]models.TranslationHistory, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTranslationsByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*translationRepository.ListByUser").Msg("error querying history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	translations := make([]models.TranslationHistory, 0)
	for rows.Next() {
		var record models.TranslationHistory
		err = rows.Scan(
			&record.ID, &record.UserID, &record.SourceText, &record.TranslatedText,
			&record.SourceLanguage, &record.TargetLanguage, &record.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*translationRepository.ListByUser").Msg("error scanning history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		translations = append(translations, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return translations, nil
}

// Delete removes the record identified by translationID, but only when it is
// owned by userID. Zero affected rows map to [ErrTranslationNotFound] so
// that callers cannot distinguish "absent" from "not mine".
func (r *translationRepository) Delete(ctx context.Context, userID, translationID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTranslation, translationID, userID)
	if err != nil {
		log.Err(err).Str("func", "*translationRepository.Delete").Msg("error deleting history record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTranslationNotFound
	}

	return nil
}

// DeleteAllByUser removes every history record owned by userID. Other users'
// records are never touched. Clearing an empty history succeeds.
func (r *translationRepository) DeleteAllByUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteAllTranslationsByUser, userID); err != nil {
		log.Err(err).Str("func", "*translationRepository.DeleteAllByUser").Msg("error clearing history")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
