package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/models"
)

var historyRows = []string{
	"id", "user_id", "source_text", "translated_text",
	"source_language", "target_language", "created_at",
}

func newTestTranslationRepo(t *testing.T) (*translationRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &translationRepository{
		db:     &DB{DB: db, driver: "pgx", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveTranslation_Success(t *testing.T) {
	repo, mock, db := newTestTranslationRepo(t)
	defer db.Close()

	record := models.TranslationHistory{
		UserID:         1,
		SourceText:     "hello",
		TranslatedText: "olá",
		SourceLanguage: "en",
		TargetLanguage: "pt",
	}

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO translation_history").
		WithArgs(record.UserID, record.SourceText, record.TranslatedText,
			record.SourceLanguage, record.TargetLanguage, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(historyRows).
			AddRow(42, 1, "hello", "olá", "en", "pt", now))

	saved, err := repo.Save(context.Background(), record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 42 {
		t.Errorf("expected ID=42, got %d", saved.ID)
	}
	if saved.TranslatedText != "olá" {
		t.Errorf("expected translated text 'olá', got %q", saved.TranslatedText)
	}
}

func TestSaveTranslation_ScanError(t *testing.T) {
	repo, mock, db := newTestTranslationRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO translation_history").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Save(context.Background(), models.TranslationHistory{UserID: 1})
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestListTranslationsByUser_Success(t *testing.T) {
	repo, mock, db := newTestTranslationRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(historyRows).
		AddRow(2, 1, "world", "mundo", "en", "pt", now).
		AddRow(1, 1, "hello", "olá", "en", "pt", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM translation_history").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	translations, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(translations) != 2 {
		t.Fatalf("expected 2 records, got %d", len(translations))
	}
	if translations[0].ID != 2 {
		t.Errorf("expected newest record first, got ID=%d", translations[0].ID)
	}
}

func TestListTranslationsByUser_Empty(t *testing.T) {
	repo, mock, db := newTestTranslationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM translation_history").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(historyRows))

	translations, err := repo.ListByUser(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if translations == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(translations) != 0 {
		t.Errorf("expected no records, got %d", len(translations))
	}
}

func TestListTranslationsByUser_QueryError(t *testing.T) {
	repo, mock, db := newTestTranslationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM translation_history").
		WillReturnError(errors.New("db gone"))

	_, err := repo.ListByUser(context.Background(), 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestDeleteTranslation_Success(t *testing.T) {
	repo, mock, db := newTestTranslationRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM translation_history").
		WithArgs(int64(42), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 1, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTranslation_NotFound(t *testing.T) {
	repo, mock, db := newTestTranslationRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM translation_history").
		WithArgs(int64(42), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 2, 42)
	if !errors.Is(err, ErrTranslationNotFound) {
		t.Fatalf("expected ErrTranslationNotFound, got %v", err)
	}
}

func TestDeleteAllTranslationsByUser_Success(t *testing.T) {
	repo, mock, db := newTestTranslationRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM translation_history").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.DeleteAllByUser(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteAllTranslationsByUser_EmptyHistory(t *testing.T) {
	repo, mock, db := newTestTranslationRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM translation_history").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteAllByUser(context.Background(), 9); err != nil {
		t.Fatalf("expected clearing empty history to succeed, got %v", err)
	}
}
