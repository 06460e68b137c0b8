package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"interviewmate/internal/llm"
	"interviewmate/internal/middleware"
	"interviewmate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHandlerFlow(t *testing.T) {
	a := newTestApp(t, nil)
	h := NewSessionHandler(a.Live, nil)
	start := middleware.ValidateRequest[*models.StartSessionRequest]()(http.HandlerFunc(h.StartHandler))
	send := middleware.ValidateRequest[*models.SendMessageRequest]()(http.HandlerFunc(h.MessageHandler))

	iv, err := a.Interviews.Create(t.Context(), models.CreateInterviewRequest{Role: "Data Engineer"}, "1")
	require.NoError(t, err)

	rec := serve(start, http.MethodPost, "/api/v1/interviews/missing/sessions", `{}`, map[string]string{"id": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(start, http.MethodPost, "/api/v1/interviews/x/sessions", `{"mode":"video"}`, map[string]string{"id": iv.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(start, http.MethodPost, "/api/v1/interviews/"+iv.ID+"/sessions", `{}`, map[string]string{"id": iv.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	view := decode[models.SessionView](t, rec)
	assert.Equal(t, "active", view.State)
	assert.Equal(t, models.ModeText, view.Mode)
	require.Len(t, view.Transcript, 1)
	params := map[string]string{"sessionID": view.SessionID}

	rec = serve(send, http.MethodPost, "/api/v1/sessions/x/messages", `{"content":"   "}`, params)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(send, http.MethodPost, "/api/v1/sessions/x/messages", `{"content":"I built a pipeline"}`, params)
	require.Equal(t, http.StatusOK, rec.Code)
	msg := decode[models.MessageResponse](t, rec)
	assert.Equal(t, models.RoleInterviewer, msg.Reply.Role)
	assert.Equal(t, "Tell me about a recent project.", msg.Reply.Content)
	assert.Len(t, msg.Session.Transcript, 3)

	rec = serve(http.HandlerFunc(h.CompleteHandler), http.MethodPost, "/api/v1/sessions/x/complete", "", params)
	require.Equal(t, http.StatusOK, rec.Code)
	done := decode[models.Interview](t, rec)
	assert.Equal(t, models.StatusCompleted, done.Status)
	assert.GreaterOrEqual(t, done.Score, 70)
	assert.LessOrEqual(t, done.Score, 100)

	rec = serve(http.HandlerFunc(h.GetHandler), http.MethodGet, "/api/v1/sessions/x", "", params)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(start, http.MethodPost, "/api/v1/interviews/"+iv.ID+"/sessions", `{}`, map[string]string{"id": iv.ID})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSessionHandlerProviderErrorIsTranscriptEntry(t *testing.T) {
	provider := &mockProvider{generateFn: func(context.Context, string, string) (*models.GenerationResponse, error) {
		return nil, &llm.ProviderError{Provider: "mock", Code: llm.ErrCodeRateLimit, Message: "quota", Err: errors.New("429")}
	}}
	a := newTestApp(t, provider)
	h := NewSessionHandler(a.Live, nil)

	iv, err := a.Interviews.Create(t.Context(), models.CreateInterviewRequest{Role: "QA"}, "1")
	require.NoError(t, err)
	s, err := a.Live.StartSession(t.Context(), iv.ID, models.ModeVoice)
	require.NoError(t, err)

	send := middleware.ValidateRequest[*models.SendMessageRequest]()(http.HandlerFunc(h.MessageHandler))
	rec := serve(send, http.MethodPost, "/api/v1/sessions/x/messages", `{"content":"hello"}`,
		map[string]string{"sessionID": s.ID()})

	require.Equal(t, http.StatusOK, rec.Code)
	msg := decode[models.MessageResponse](t, rec)
	assert.Contains(t, msg.Reply.Content, "API quota exceeded")
}
