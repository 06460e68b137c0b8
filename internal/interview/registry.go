package interview

import (
	"context"
	"sync"

	"interviewmate/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InterviewSource is the part of the interview repository a registry needs.
type InterviewSource interface {
	Completer
	Get(ctx context.Context, id string) (models.Interview, error)
}

// Registry keeps live sessions by id.
type Registry struct {
	interviews InterviewSource
	deps       Deps

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry wires deps.Completer to interviews when it is unset.
func NewRegistry(interviews InterviewSource, deps Deps) *Registry {
	if deps.Completer == nil {
		deps.Completer = interviews
	}
	return &Registry{
		interviews: interviews,
		deps:       deps.withDefaults(),
		sessions:   make(map[string]*Session),
	}
}

// StartSession opens a live session for a pending interview.
func (r *Registry) StartSession(ctx context.Context, interviewID, mode string) (*Session, error) {
	iv, err := r.interviews.Get(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.Status != models.StatusPending {
		return nil, ErrInterviewNotPending
	}

	s := NewSession(uuid.New().String(), iv, r.deps)
	if _, err := s.Start(mode); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()
	return s, nil
}

func (r *Registry) Get(sessionID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Reset drops every live session, used on logout and wipe.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sessions) > 0 {
		r.deps.Logger.Info("discarding live sessions", zap.Int("count", len(r.sessions)))
	}
	r.sessions = make(map[string]*Session)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
