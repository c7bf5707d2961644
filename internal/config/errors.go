package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token signing key or non-positive token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTranslatorConfigs indicates invalid upstream translator
	// settings (for example, missing base URL or request timeout).
	ErrInvalidTranslatorConfigs = errors.New("invalid translator configuration")
	// ErrInvalidOCRConfigs indicates invalid OCR settings
	// (for example, an empty language pack list).
	ErrInvalidOCRConfigs = errors.New("invalid ocr configuration")
)
