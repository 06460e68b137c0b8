package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"interviewmate/internal/llm"
	"interviewmate/internal/models"
)

const providerName = "gemini"

// Client relays prompts to the Gemini API
type Client struct {
	client *genai.Client // nil without an API key
	config *Config
}

func NewClient(ctx context.Context, config *Config) (*Client, error) {
	if config.APIKey == "" {
		return &Client{config: config}, nil
	}

	cc := &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: config.HTTPClient,
	}
	if config.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{
			BaseURL:    config.BaseURL,
			APIVersion: config.APIVersion,
		}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: providerName,
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client: client,
		config: config,
	}, nil
}

// generates the interviewer's next turn
func (c *Client) GenerateContent(ctx context.Context, prompt string, requestID string) (*models.GenerationResponse, error) {
	if c.client == nil {
		return nil, &llm.ProviderError{
			Provider: providerName,
			Code:     llm.ErrCodeAPIKey,
			Message:  "API key is not configured",
		}
	}

	startTime := time.Now()
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		return nil, toProviderError(err)
	}

	if result == nil {
		return nil, &llm.ProviderError{
			Provider: providerName,
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}

	// an empty reply is not an error; the caller substitutes its own fallback
	content := result.Text()

	return &models.GenerationResponse{
		Content:   content,
		RequestID: requestID,
		Metadata: models.GenerationMetadata{
			ProcessingTime: int(time.Since(startTime).Milliseconds()),
			Provider:       providerName,
			Model:          c.config.Model,
		},
	}, nil
}

func (c *Client) GetProviderName() string {
	return providerName
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}

// toProviderError keeps the upstream message and picks a code from the
// HTTP status, falling back to message matching.
func toProviderError(err error) *llm.ProviderError {
	provErr := &llm.ProviderError{
		Provider: providerName,
		Code:     llm.Classify(err),
		Message:  err.Error(),
		Err:      err,
	}

	apiErr, ok := asAPIError(err)
	if !ok {
		return provErr
	}
	if apiErr.Message != "" {
		provErr.Message = apiErr.Message
	}

	switch {
	case strings.Contains(apiErr.Message, "API key"), apiErr.Code == http.StatusUnauthorized:
		provErr.Code = llm.ErrCodeAPIKey
	case apiErr.Code == http.StatusTooManyRequests:
		provErr.Code = llm.ErrCodeRateLimit
	case apiErr.Code == http.StatusNotFound:
		provErr.Code = llm.ErrCodeNotFound
	case apiErr.Code == http.StatusForbidden:
		provErr.Code = llm.ErrCodePermission
	}
	return provErr
}
