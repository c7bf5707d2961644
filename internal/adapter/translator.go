package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/traduzo/traduzo-backend/internal/config"
	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/utils"
	"github.com/traduzo/traduzo-backend/models"
)

// libreTranslateAdapter is the HTTP implementation of [Translator] speaking
// the LibreTranslate REST protocol.
type libreTranslateAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// translateRequest is the LibreTranslate /translate and /detect payload.
// Detection only uses Q.
type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
	Format string `json:"format,omitempty"`
}

type translateResponse struct {
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage *struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	} `json:"detectedLanguage"`
}

type detectCandidate struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// NewLibreTranslateAdapter constructs a [Translator] talking to the
// LibreTranslate instance at cfg.BaseURL. It normalises and validates the
// base URL and configures the underlying HTTP client with the resolved base
// URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewLibreTranslateAdapter(cfg config.Translator, logger *logger.Logger) (Translator, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid translator base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &libreTranslateAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Translate implements [Translator]. It POSTs the text to POST /translate
// with format "text" and returns the translated text plus the language the
// engine detected when source is "auto".
//
// Transport failures map to [ErrTranslatorUnavailable]; non-2xx statuses and
// unparsable bodies map to [ErrTranslatorResponse].
func (a *libreTranslateAdapter) Translate(ctx context.Context, text, source, target string) (models.TranslationResult, error) {
	log := logger.FromContext(ctx)

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(translateRequest{Q: text, Source: source, Target: target, Format: "text"}).
		Post("/translate")
	if err != nil {
		log.Err(err).Str("func", "*libreTranslateAdapter.Translate").Msg("translate request failed")
		return models.TranslationResult{}, fmt.Errorf("%w: %w", ErrTranslatorUnavailable, err)
	}
	if err = mapEngineError(resp.StatusCode(), resp.Body()); err != nil {
		return models.TranslationResult{}, err
	}

	var body translateResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.TranslationResult{}, fmt.Errorf("%w: %w", ErrTranslatorResponse, err)
	}
	if body.TranslatedText == "" && text != "" {
		return models.TranslationResult{}, fmt.Errorf("%w: missing translatedText", ErrTranslatorResponse)
	}

	result := models.TranslationResult{TranslatedText: body.TranslatedText}
	switch {
	case body.DetectedLanguage != nil && body.DetectedLanguage.Language != "":
		result.DetectedLanguage = body.DetectedLanguage.Language
	case source != "auto":
		result.DetectedLanguage = source
	default:
		result.DetectedLanguage = "unknown"
	}

	return result, nil
}

// Detect implements [Translator]. It POSTs the text to POST /detect, which
// answers with a confidence-ordered JSON array of candidates, and returns
// the first one.
func (a *libreTranslateAdapter) Detect(ctx context.Context, text string) (models.DetectionResult, error) {
	log := logger.FromContext(ctx)

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(translateRequest{Q: text}).
		Post("/detect")
	if err != nil {
		log.Err(err).Str("func", "*libreTranslateAdapter.Detect").Msg("detect request failed")
		return models.DetectionResult{}, fmt.Errorf("%w: %w", ErrTranslatorUnavailable, err)
	}
	if err = mapEngineError(resp.StatusCode(), resp.Body()); err != nil {
		return models.DetectionResult{}, err
	}

	var candidates []detectCandidate
	if err = json.Unmarshal(resp.Body(), &candidates); err != nil {
		return models.DetectionResult{}, fmt.Errorf("%w: %w", ErrTranslatorResponse, err)
	}
	if len(candidates) == 0 {
		return models.DetectionResult{}, ErrNoDetection
	}

	return models.DetectionResult{
		DetectedLanguage: candidates[0].Language,
		Confidence:       candidates[0].Confidence,
	}, nil
}

func mapEngineError(statusCode int, body []byte) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrTranslatorUnavailable, statusCode, msg)
	}
	return fmt.Errorf("%w: http %d: %s", ErrTranslatorResponse, statusCode, msg)
}
