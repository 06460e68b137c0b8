package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"interviewmate/internal/interview"
	"interviewmate/internal/models"
	"interviewmate/internal/repositories"
	"interviewmate/internal/session"
	"interviewmate/internal/utils"
)

// writeError maps domain errors to HTTP responses. Anything unknown is a
// storage failure.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var errResp *models.ErrorResponse
	switch {
	case errors.As(err, &errResp):
		utils.JSON(w, http.StatusBadRequest, *errResp)
	case errors.Is(err, repositories.ErrInvalidScore),
		errors.Is(err, interview.ErrInvalidMode),
		errors.Is(err, interview.ErrEmptyMessage):
		utils.JSONError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, repositories.ErrInterviewNotFound),
		errors.Is(err, repositories.ErrTemplateNotFound),
		errors.Is(err, repositories.ErrChecklistItemNotFound),
		errors.Is(err, interview.ErrSessionNotFound):
		utils.JSONError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, repositories.ErrAlreadyCompleted),
		errors.Is(err, interview.ErrNotActive),
		errors.Is(err, interview.ErrAlreadyStarted),
		errors.Is(err, interview.ErrReplyDropped),
		errors.Is(err, interview.ErrInterviewNotPending):
		utils.JSONError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, session.ErrUnauthenticated):
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	default:
		logger.Error("storage error", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "storage_error", "Failed to access stored data")
	}
}
