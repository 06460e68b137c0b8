package interview

import "interviewmate/internal/models"

// state is one of unstarted, *active or completed.
type state interface {
	name() string
}

type unstarted struct{}

// active is held by pointer so a reply can tell whether the session it
// was requested for is still the live one.
type active struct {
	mode       string
	transcript []models.Turn
}

type completed struct {
	score int
}

func (unstarted) name() string { return StateUnstarted }
func (*active) name() string   { return StateActive }
func (completed) name() string { return StateCompleted }

const (
	StateUnstarted = "unstarted"
	StateActive    = "active"
	StateCompleted = "completed"
)
