package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and profile updates against the
// "users" table and works identically over pgx and sqlite3.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyExists]
//   - any other driver-level error → wrapped as "unexpected DB error"
//   - scan failure → wrapped [ErrScanningRow]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, createUser,
		user.Name, user.Email, user.PasswordHash,
		user.PreferredLanguage, user.Theme,
		user.Notifications, user.AutoDetectLanguage,
		now, now)

	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error persisting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email exactly matches the given
// value. Email comparison is case-sensitive.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound]
//   - any other error → wrapped as "unexpected DB error"
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := scanUser(r.db.QueryRowContext(ctx, findUserByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error querying user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindUserByID retrieves a user record by primary key.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := scanUser(r.db.QueryRowContext(ctx, findUserByID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error querying user by id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateProfile applies the non-nil fields of update to the user row and
// returns the record as stored after the update.
//
// The UPDATE is built dynamically (see [buildProfileUpdateQuery]) so that
// unspecified fields are never touched; updated_at is always bumped.
//
// Error handling:
//   - empty update → [ErrBuildingSQLQuery]
//   - unique-constraint violation on a changed email → [ErrEmailAlreadyExists]
//   - [sql.ErrNoRows] (vanished user) → [ErrUserNotFound]
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProfileUpdateQuery(userID, update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building update query")
		return models.User{}, err
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return models.User{}, ErrEmailAlreadyExists
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrUserNotFound
		default:
			log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating user profile")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// scanUser reads a full user row (see [userColumns]) into a models.User.
// avatar_url is nullable and scanned through sql.NullString.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var avatarURL sql.NullString

	err := row.Scan(
		&user.UserID, &user.Name, &user.Email, &user.PasswordHash,
		&user.PreferredLanguage, &user.Theme,
		&user.Notifications, &user.AutoDetectLanguage,
		&avatarURL, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.AvatarURL = avatarURL.String
	return user, nil
}
