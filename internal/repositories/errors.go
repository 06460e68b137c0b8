package repositories

import "errors"

var (
	ErrInterviewNotFound     = errors.New("interview not found")
	ErrAlreadyCompleted      = errors.New("interview already completed")
	ErrInvalidScore          = errors.New("score must be between 0 and 100")
	ErrTemplateNotFound      = errors.New("template not found")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
)
