// Package interview runs live interview sessions: a per-interview state
// machine that relays candidate answers to the AI interviewer.
package interview

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"interviewmate/internal/llm"
	"interviewmate/internal/models"
	"interviewmate/internal/prompts"
	"interviewmate/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotActive           = errors.New("interview session is not active")
	ErrAlreadyStarted      = errors.New("interview session already started")
	ErrInvalidMode         = errors.New("mode must be text or voice")
	ErrEmptyMessage        = errors.New("message content is required")
	ErrInterviewNotPending = errors.New("only pending interviews can be started")
	ErrReplyDropped        = errors.New("session ended before the reply arrived")
	ErrSessionNotFound     = errors.New("interview session not found")
)

// minimum score and width of the uniform score range
const (
	minScore   = 70
	scoreRange = 31
)

// Completer persists the outcome of a finished session.
type Completer interface {
	Complete(ctx context.Context, id string, score int) (models.Interview, error)
}

// Recorder observes AI replies and completions; the metrics package
// provides the Prometheus implementation.
type Recorder interface {
	ObserveReply(outcome string)
	ObserveCompletion(score int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveReply(string)   {}
func (nopRecorder) ObserveCompletion(int) {}

// Deps are shared by every session of a registry.
type Deps struct {
	Provider  llm.Provider
	Prompts   prompts.PromptProvider
	Completer Completer
	Recorder  Recorder
	Logger    *zap.Logger
	// Intn returns a value in [0, n); defaults to math/rand/v2.
	Intn func(n int) int
	Now  func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Recorder == nil {
		d.Recorder = nopRecorder{}
	}
	d.Logger = utils.OrNop(d.Logger)
	if d.Intn == nil {
		d.Intn = rand.IntN
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

type Session struct {
	id        string
	interview models.Interview
	deps      Deps

	mu    sync.Mutex
	state state
}

func NewSession(id string, iv models.Interview, deps Deps) *Session {
	return &Session{
		id:        id,
		interview: iv.Clone(),
		deps:      deps.withDefaults(),
		state:     unstarted{},
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) InterviewID() string {
	return s.interview.ID
}

// Start opens the session in mode with the interviewer's greeting.
func (s *Session) Start(mode string) (models.Turn, error) {
	mode = utils.NormalizeLevel(mode)
	if mode == "" {
		mode = models.ModeText
	}
	if mode != models.ModeText && mode != models.ModeVoice {
		return models.Turn{}, ErrInvalidMode
	}
	if s.interview.IsCompleted() {
		return models.Turn{}, ErrInterviewNotPending
	}

	greeting, err := s.deps.Prompts.BuildPrompt(prompts.TemplateGreeting, prompts.VariantOpening,
		prompts.NewInterviewData(s.interview, nil, ""))
	if err != nil {
		return models.Turn{}, fmt.Errorf("failed to build greeting: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.(unstarted); !ok {
		return models.Turn{}, ErrAlreadyStarted
	}

	opening := models.Turn{Role: models.RoleInterviewer, Content: greeting, Timestamp: s.deps.Now()}
	s.state = &active{mode: mode, transcript: []models.Turn{opening}}

	s.deps.Logger.Info("interview session started",
		zap.String("session_id", s.id),
		zap.String("interview_id", s.interview.ID),
		zap.String("mode", mode))
	return opening, nil
}

// Send appends the candidate's answer and exactly one interviewer turn:
// the AI reply, a fallback for an empty reply, or a readable error. The
// lock is not held during the AI call.
func (s *Session) Send(ctx context.Context, input string) (models.Turn, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return models.Turn{}, ErrEmptyMessage
	}

	s.mu.Lock()
	act, ok := s.state.(*active)
	if !ok {
		s.mu.Unlock()
		return models.Turn{}, ErrNotActive
	}
	history := append([]models.Turn(nil), act.transcript...)
	act.transcript = append(act.transcript, models.Turn{
		Role:      models.RoleCandidate,
		Content:   input,
		Timestamp: s.deps.Now(),
	})
	s.mu.Unlock()

	content := s.generate(ctx, history, input)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != state(act) {
		s.deps.Logger.Info("dropping late interviewer reply", zap.String("session_id", s.id))
		return models.Turn{}, ErrReplyDropped
	}

	reply := models.Turn{Role: models.RoleInterviewer, Content: content, Timestamp: s.deps.Now()}
	act.transcript = append(act.transcript, reply)
	return reply, nil
}

func (s *Session) generate(ctx context.Context, history []models.Turn, input string) string {
	prompt, err := s.deps.Prompts.BuildPrompt(prompts.TemplateInterview, prompts.VariantTurn,
		prompts.NewInterviewData(s.interview, history, input))
	if err != nil {
		s.deps.Logger.Error("failed to build interview prompt", zap.Error(err))
		s.deps.Recorder.ObserveReply(llm.ErrCodeInvalidInput)
		return ErrorMessage(err)
	}

	requestID := uuid.New().String()
	resp, err := s.deps.Provider.GenerateContent(ctx, prompt, requestID)
	if err != nil {
		code := llm.Classify(err)
		s.deps.Logger.Warn("AI provider call failed",
			zap.String("session_id", s.id),
			zap.String("request_id", requestID),
			zap.String("code", code),
			zap.Error(err))
		s.deps.Recorder.ObserveReply(code)
		return ErrorMessage(err)
	}

	if strings.TrimSpace(resp.Content) == "" {
		s.deps.Recorder.ObserveReply(OutcomeEmpty)
		return emptyFallback
	}

	s.deps.Logger.Debug("AI reply received",
		zap.String("session_id", s.id),
		zap.String("request_id", requestID),
		zap.Int("processing_ms", resp.Metadata.ProcessingTime))
	s.deps.Recorder.ObserveReply(OutcomeReply)
	return resp.Content
}

// Complete scores the session uniformly in [70, 100], persists the
// result and discards the transcript.
func (s *Session) Complete(ctx context.Context) (models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.(*active); !ok {
		return models.Interview{}, ErrNotActive
	}

	score := minScore + s.deps.Intn(scoreRange)
	updated, err := s.deps.Completer.Complete(ctx, s.interview.ID, score)
	if err != nil {
		return models.Interview{}, err
	}

	s.state = completed{score: score}
	s.interview = updated.Clone()
	s.deps.Recorder.ObserveCompletion(score)
	s.deps.Logger.Info("interview session completed",
		zap.String("session_id", s.id),
		zap.String("interview_id", s.interview.ID),
		zap.Int("score", score))
	return updated, nil
}

// View snapshots the session for callers.
func (s *Session) View() models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := models.SessionView{
		SessionID:   s.id,
		InterviewID: s.interview.ID,
		State:       s.state.name(),
		Transcript:  []models.Turn{},
	}
	switch st := s.state.(type) {
	case *active:
		view.Mode = st.mode
		view.Transcript = append(view.Transcript, st.transcript...)
	case completed:
		view.Score = st.score
	}
	return view
}
