package models

import (
	"strings"

	"interviewmate/internal/utils"
)

type CreateInterviewRequest struct {
	Role         string   `json:"role"`
	Experience   string   `json:"experience"`
	Type         string   `json:"type"`
	Difficulty   string   `json:"difficulty"`
	Duration     string   `json:"duration"`
	Technologies []string `json:"technologies"`
	Focus        string   `json:"focus"`
}

// implements the Validator interface
func (r *CreateInterviewRequest) Validate() error {
	r.Role = strings.TrimSpace(r.Role)
	if r.Role == "" {
		return &ErrorResponse{Code: "missing_role", Message: "Please enter a job role"}
	}

	r.Experience = utils.NormalizeLevel(r.Experience)
	if r.Experience == "" {
		r.Experience = DefaultExperience
	}
	if !ValidExperienceLevels[r.Experience] {
		return &ErrorResponse{
			Code:    "invalid_experience",
			Message: "Experience must be one of: " + strings.Join(ValidExperienceLevelsList(), ", "),
		}
	}

	r.Type = utils.NormalizeLevel(r.Type)
	if r.Type == "" {
		r.Type = DefaultType
	}
	if !ValidInterviewTypes[r.Type] {
		return &ErrorResponse{
			Code:    "invalid_type",
			Message: "Interview type must be one of: " + strings.Join(ValidInterviewTypesList(), ", "),
		}
	}

	r.Difficulty = utils.NormalizeDifficulty(r.Difficulty)
	if r.Difficulty == "" {
		r.Difficulty = DefaultDifficulty
	}
	if !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "Difficulty must be one of: " + strings.Join(ValidDifficultiesList(), ", "),
		}
	}

	r.Duration = strings.TrimSpace(r.Duration)
	if r.Duration == "" {
		r.Duration = DefaultDuration
	}
	if !ValidDurations[r.Duration] {
		return &ErrorResponse{
			Code:    "invalid_duration",
			Message: "Duration must be one of: " + strings.Join(ValidDurationsList(), ", ") + " minutes",
		}
	}

	r.Technologies = utils.NormalizeTechnologies(r.Technologies)
	r.Focus = strings.TrimSpace(r.Focus)
	return nil
}

// LoginRequest covers both login and registration; Register is set by the
// caller, never decoded from the body.
type LoginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Register    bool   `json:"-"`
}

// Rules are checked in order and the first failure wins.
func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return &ErrorResponse{Code: "missing_fields", Message: "Please fill in all fields"}
	}
	if !strings.Contains(r.Email, "@") {
		return &ErrorResponse{Code: "invalid_email", Message: "Please enter a valid email address"}
	}
	if len(r.Password) < 6 {
		return &ErrorResponse{Code: "password_too_short", Message: "Password must be at least 6 characters"}
	}
	if r.Register && strings.TrimSpace(r.DisplayName) == "" {
		return &ErrorResponse{Code: "missing_name", Message: "Please enter your full name"}
	}
	return nil
}

type StartSessionRequest struct {
	Mode string `json:"mode"`
}

func (r *StartSessionRequest) Validate() error {
	r.Mode = utils.NormalizeLevel(r.Mode)
	if r.Mode == "" {
		r.Mode = ModeText
	}
	if r.Mode != ModeText && r.Mode != ModeVoice {
		return &ErrorResponse{Code: "invalid_mode", Message: "Mode must be text or voice"}
	}
	return nil
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

func (r *SendMessageRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return &ErrorResponse{Code: "empty_message", Message: "Message content is required"}
	}
	return nil
}

type ChecklistItemRequest struct {
	Text string `json:"text"`
}

func (r *ChecklistItemRequest) Validate() error {
	r.Text = strings.TrimSpace(r.Text)
	if r.Text == "" {
		return &ErrorResponse{Code: "missing_text", Message: "Checklist item text is required"}
	}
	return nil
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

func (r *ThemeRequest) Validate() error {
	r.Theme = utils.NormalizeLevel(r.Theme)
	if r.Theme != ThemeDark && r.Theme != ThemeLight {
		return &ErrorResponse{Code: "invalid_theme", Message: "Theme must be dark or light"}
	}
	return nil
}

type ProfileRequest struct {
	Profile
}

func (r *ProfileRequest) Validate() error {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.TargetRole = strings.TrimSpace(r.TargetRole)
	r.YearsOfExperience = strings.TrimSpace(r.YearsOfExperience)
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		return &ErrorResponse{Code: "invalid_email", Message: "Please enter a valid email address"}
	}
	return nil
}
