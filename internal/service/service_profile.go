package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/store"
	"github.com/traduzo/traduzo-backend/models"
)

// maxAvatarBytes caps the decoded avatar payload at 2MB.
const maxAvatarBytes = 2 << 20

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService over the given UserRepository.
func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Update applies a partial profile update. Only the non-nil fields of update
// change; everything else keeps its stored value.
//
// Returns the user as stored after the update, or:
//   - ErrInvalidDataProvided if update carries no fields.
//   - store.ErrEmailAlreadyExists if a changed email is already taken.
//   - store.ErrUserNotFound if the account no longer exists.
func (p *profileService) Update(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return models.User{}, ErrInvalidDataProvided
	}

	updatedUser, err := p.userRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		return models.User{}, err
	}

	return updatedUser, nil
}

// UpdateAvatar validates and stores a user's avatar image.
//
// The avatar is accepted either as raw base64 or as a data URI
// ("data:image/png;base64,<payload>"). The payload is decoded for validation
// only; the original string is what gets stored in avatar_url.
//
// Returns ErrInvalidAvatar for undecodable payloads and ErrAvatarTooLarge
// when the decoded image exceeds 2MB.
func (p *profileService) UpdateAvatar(ctx context.Context, userID int64, avatar string) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(avatar) == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if err := validateAvatar(avatar); err != nil {
		log.Warn().Int64("id", userID).Err(err).Msg("avatar rejected")
		return models.User{}, err
	}

	updatedUser, err := p.userRepository.UpdateProfile(ctx, userID, models.ProfileUpdate{AvatarURL: &avatar})
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("avatar update failed")
		return models.User{}, err
	}

	return updatedUser, nil
}

// validateAvatar decodes the base64 payload of avatar and checks the size cap.
func validateAvatar(avatar string) error {
	payload := avatar
	if strings.HasPrefix(payload, "data:") {
		_, after, found := strings.Cut(payload, "base64,")
		if !found {
			return fmt.Errorf("%w: data URI without base64 payload", ErrInvalidAvatar)
		}
		payload = after
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAvatar, err)
	}
	if len(decoded) > maxAvatarBytes {
		return ErrAvatarTooLarge
	}

	return nil
}
