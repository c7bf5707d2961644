package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/store"
	"github.com/traduzo/traduzo-backend/models"
)

func TestProfileUpdate_Success(t *testing.T) {
	theme := "dark"
	var gotUpdate models.ProfileUpdate

	repo := &mockUserRepository{
		updateProfileFn: func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
			gotUpdate = update
			return models.User{UserID: userID, Theme: *update.Theme}, nil
		},
	}
	svc := NewProfileService(repo, logger.Nop())

	updated, err := svc.Update(context.Background(), 1, models.ProfileUpdate{Theme: &theme})
	require.NoError(t, err)
	assert.Equal(t, "dark", updated.Theme)

	// untouched fields stay nil all the way to the repository
	assert.Nil(t, gotUpdate.Name)
	assert.Nil(t, gotUpdate.Email)
	assert.Nil(t, gotUpdate.AvatarURL)
}

func TestProfileUpdate_Empty(t *testing.T) {
	svc := NewProfileService(&mockUserRepository{}, logger.Nop())

	_, err := svc.Update(context.Background(), 1, models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProfileUpdate_EmailTaken(t *testing.T) {
	email := "taken@example.com"
	repo := &mockUserRepository{
		updateProfileFn: func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := NewProfileService(repo, logger.Nop())

	_, err := svc.Update(context.Background(), 1, models.ProfileUpdate{Email: &email})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestProfileUpdateAvatar_RawBase64(t *testing.T) {
	avatar := base64.StdEncoding.EncodeToString([]byte("tiny png"))

	var stored string
	repo := &mockUserRepository{
		updateProfileFn: func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
			require.NotNil(t, update.AvatarURL)
			stored = *update.AvatarURL
			return models.User{UserID: userID, AvatarURL: stored}, nil
		},
	}
	svc := NewProfileService(repo, logger.Nop())

	updated, err := svc.UpdateAvatar(context.Background(), 1, avatar)
	require.NoError(t, err)

	// the original string is stored, not the decoded bytes
	assert.Equal(t, avatar, stored)
	assert.Equal(t, avatar, updated.AvatarURL)
}

func TestProfileUpdateAvatar_DataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("tiny png"))
	avatar := "data:image/png;base64," + payload

	repo := &mockUserRepository{
		updateProfileFn: func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
			return models.User{UserID: userID, AvatarURL: *update.AvatarURL}, nil
		},
	}
	svc := NewProfileService(repo, logger.Nop())

	updated, err := svc.UpdateAvatar(context.Background(), 1, avatar)
	require.NoError(t, err)
	assert.Equal(t, avatar, updated.AvatarURL)
}

func TestProfileUpdateAvatar_Malformed(t *testing.T) {
	svc := NewProfileService(&mockUserRepository{}, logger.Nop())

	tests := []struct {
		name   string
		avatar string
	}{
		{name: "not base64", avatar: "%%%not-base64%%%"},
		{name: "data uri without payload marker", avatar: "data:image/png,plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateAvatar(context.Background(), 1, tt.avatar)
			assert.ErrorIs(t, err, ErrInvalidAvatar)
		})
	}
}

func TestProfileUpdateAvatar_TooLarge(t *testing.T) {
	oversized := base64.StdEncoding.EncodeToString(make([]byte, maxAvatarBytes+1))
	svc := NewProfileService(&mockUserRepository{}, logger.Nop())

	_, err := svc.UpdateAvatar(context.Background(), 1, oversized)
	assert.ErrorIs(t, err, ErrAvatarTooLarge)
}

func TestProfileUpdateAvatar_Empty(t *testing.T) {
	svc := NewProfileService(&mockUserRepository{}, logger.Nop())

	_, err := svc.UpdateAvatar(context.Background(), 1, strings.Repeat(" ", 3))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
