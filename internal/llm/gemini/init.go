package gemini

import (
	"context"

	"interviewmate/internal/config"
	"interviewmate/internal/llm"
)

// Register Gemini provider on package import
func init() {
	llm.RegisterProvider(providerName, func(cfg *config.Config) (llm.Provider, error) {
		gc, err := NewConfig(cfg)
		if err != nil {
			return nil, err
		}
		return NewClient(context.Background(), gc)
	})
}
