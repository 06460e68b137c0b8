package models

import "time"

const (
	RoleInterviewer = "interviewer"
	RoleCandidate   = "candidate"
)

// Turn is one entry of a live interview transcript. Turns are never persisted.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionView is what the API returns for a live interview session.
type SessionView struct {
	SessionID   string `json:"session_id"`
	InterviewID string `json:"interview_id"`
	State       string `json:"state"`
	Mode        string `json:"mode,omitempty"`
	Transcript  []Turn `json:"transcript"`
	Score       int    `json:"score,omitempty"`
}

// MessageResponse is returned for a candidate message: the interviewer's
// reply and the session after it.
type MessageResponse struct {
	Reply   Turn        `json:"reply"`
	Session SessionView `json:"session"`
}
