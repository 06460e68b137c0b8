package interview

import (
	"interviewmate/internal/llm"
)

const (
	errorPrefix   = "There was a problem connecting to the AI. "
	emptyFallback = "Sorry, I didn't catch that. Could you please elaborate?"
)

// ErrorMessage turns a provider failure into the interviewer turn shown
// in the transcript.
func ErrorMessage(err error) string {
	switch llm.Classify(err) {
	case llm.ErrCodeAPIKey:
		return errorPrefix + "Please check your API key configuration."
	case llm.ErrCodeRateLimit:
		return errorPrefix + "API quota exceeded. Please try again later."
	case llm.ErrCodeNotFound:
		return errorPrefix + "Model not available. Your API key may not have access to Gemini models yet."
	case llm.ErrCodePermission:
		return errorPrefix + "Permission denied. Please enable the Generative Language API in Google Cloud Console."
	default:
		return errorPrefix + "Error: " + llm.ErrorDetail(err)
	}
}

// outcome labels reported to the Recorder
const (
	OutcomeReply = "reply"
	OutcomeEmpty = "empty"
)
