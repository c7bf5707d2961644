package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that login responses do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("invalid token")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrInvalidAvatar  = errors.New("avatar is not valid base64 image data")
	ErrAvatarTooLarge = errors.New("avatar exceeds the maximum allowed size")
)
