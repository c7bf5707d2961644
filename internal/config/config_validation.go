package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error naming the
// invalid configuration group otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Translator.BaseURL == "" || cfg.Translator.RequestTimeout <= 0 {
		return ErrInvalidTranslatorConfigs
	}

	if cfg.OCR.Languages == "" {
		return ErrInvalidOCRConfigs
	}

	return nil
}

// IsDevTokenSignKey reports whether the merged config still carries the
// built-in development signing key. Production deployments must supply their
// own key; main logs a warning when this returns true.
func (cfg *StructuredConfig) IsDevTokenSignKey() bool {
	return cfg.App.TokenSignKey == DevTokenSignKey
}
