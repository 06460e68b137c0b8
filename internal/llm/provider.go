package llm

import (
	"context"
	"errors"
	"strings"

	"interviewmate/internal/models"
)

// defines the interface for LLM providers
type Provider interface {
	GenerateContent(ctx context.Context, prompt string, requestID string) (*models.GenerationResponse, error)
	GetProviderName() string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeNotFound     = "model_not_found"
	ErrCodePermission   = "permission_denied"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)

// Classify maps any provider failure onto one of the error codes. A
// ProviderError that already carries a specific code keeps it; everything
// else is matched on its message, first match wins.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	var provErr *ProviderError
	if errors.As(err, &provErr) {
		switch provErr.Code {
		case ErrCodeAPIKey, ErrCodeRateLimit, ErrCodeNotFound, ErrCodePermission:
			return provErr.Code
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key"):
		return ErrCodeAPIKey
	case strings.Contains(msg, "quota"), strings.Contains(msg, "429"), strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return ErrCodeRateLimit
	case strings.Contains(msg, "not found"), strings.Contains(msg, "404"), strings.Contains(msg, "NOT_FOUND"):
		return ErrCodeNotFound
	case strings.Contains(msg, "permission"), strings.Contains(msg, "PERMISSION_DENIED"):
		return ErrCodePermission
	case errors.Is(err, context.DeadlineExceeded):
		return ErrCodeTimeout
	}

	if provErr != nil && provErr.Code != "" {
		return provErr.Code
	}
	return ErrCodeServiceDown
}

// ErrorDetail returns the text shown for errors that fall outside the
// known categories: a provider's own message, or the raw error text.
func ErrorDetail(err error) string {
	var provErr *ProviderError
	if errors.As(err, &provErr) && provErr.Message != "" {
		return provErr.Message
	}
	return err.Error()
}
