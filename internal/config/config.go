package config

import (
	"time"
)

// DevTokenSignKey is the built-in development signing key applied when no
// key is supplied through the environment, flags, or a JSON file. It must
// never be used in a production deployment; main logs a warning when the
// final config still carries it.
const DevTokenSignKey = "chave-secreta-desenvolvimento"

// StructuredConfig is the top-level configuration container for the
// traduzo backend. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token signing key, issuer and
	// session lifetime.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Translator holds settings for the upstream translation service.
	Translator Translator `envPrefix:"TRANSLATOR_"`

	// OCR holds settings for the optical character recognition engine.
	OCR OCR `envPrefix:"OCR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// token lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential and supplied externally in production.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" (or
	// "postgresql://") DSN selects the pgx driver; anything else is treated
	// as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Translator holds settings for the upstream LibreTranslate-compatible
// translation service.
type Translator struct {
	// BaseURL is the base URL of the translation service
	// (e.g. "http://localhost:5002").
	// Env: TRANSLATOR_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound call to the translation service.
	// A timed-out or unreachable upstream is reported to the caller as an
	// upstream failure, never as a hung request.
	// Env: TRANSLATOR_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// OCR holds settings for the text-extraction engine.
type OCR struct {
	// Languages is the tesseract language pack specifier used when reading
	// text from uploaded images (e.g. "eng+por").
	// Env: OCR_LANGUAGES
	Languages string `env:"LANGUAGES"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in development defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// Redacted returns a copy of the config safe for logging: the token signing
// key is masked, everything else is carried over as is.
func (cfg *StructuredConfig) Redacted() StructuredConfig {
	redacted := *cfg
	if redacted.App.TokenSignKey != "" {
		redacted.App.TokenSignKey = "[REDACTED]"
	}
	return redacted
}

// defaults returns the built-in development configuration layer: a SQLite
// file next to the binary, a local LibreTranslate instance on port 5002, and
// a 24h session lifetime.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  DevTokenSignKey,
			TokenIssuer:   "traduzo",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{DSN: "./app.db"},
		},
		Server: Server{
			HTTPAddress:    ":5000",
			RequestTimeout: 30 * time.Second,
		},
		Translator: Translator{
			BaseURL:        "http://localhost:5002",
			RequestTimeout: 10 * time.Second,
		},
		OCR: OCR{
			Languages: "eng+por",
		},
	}
}
