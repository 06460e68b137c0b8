package gemini

import (
	"errors"
	"net/http"

	"interviewmate/internal/config"
)

const defaultModel = "gemini-2.5-flash"

// holds Gemini-specific configuration
type Config struct {
	APIKey string
	Model  string

	// BaseURL and HTTPClient redirect the SDK, used against stub servers.
	BaseURL    string
	APIVersion string
	HTTPClient *http.Client
}

// NewConfig derives the provider settings from the application config.
// An empty API key is accepted; the client then reports a key error on
// every call instead of failing at startup.
func NewConfig(cfg *config.Config) (*Config, error) {
	if cfg == nil {
		return nil, errors.New("gemini: configuration is required")
	}

	model := cfg.Gemini.Model
	if model == "" {
		model = defaultModel
	}

	return &Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  model,
	}, nil
}
