package repositories

import (
	"context"

	"interviewmate/internal/models"
	"interviewmate/internal/store"
	"interviewmate/internal/utils"

	"go.uber.org/zap"
)

// SettingsRepository covers the small per-user records: profile, theme
// and practice streak.
type SettingsRepository struct {
	store  store.Store
	logger *zap.Logger
}

func NewSettingsRepository(s store.Store, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{store: s, logger: utils.OrNop(logger)}
}

// Profile returns the stored profile, or one derived from the session.
func (r *SettingsRepository) Profile(ctx context.Context, session *models.UserSession) models.Profile {
	var profile models.Profile
	if store.LoadJSON(ctx, r.store, store.KeyProfile, &profile, r.logger) {
		return profile
	}
	if session == nil {
		return models.Profile{}
	}
	return models.Profile{FullName: session.DisplayName, Email: session.Email}
}

func (r *SettingsRepository) SaveProfile(ctx context.Context, req models.ProfileRequest) (models.Profile, error) {
	if err := req.Validate(); err != nil {
		return models.Profile{}, err
	}
	if err := store.SaveJSON(ctx, r.store, store.KeyProfile, req.Profile); err != nil {
		return models.Profile{}, err
	}
	return req.Profile, nil
}

// Theme defaults to light.
func (r *SettingsRepository) Theme(ctx context.Context) string {
	theme := models.ThemeLight
	store.LoadJSON(ctx, r.store, store.KeyTheme, &theme, r.logger)
	if theme != models.ThemeDark {
		return models.ThemeLight
	}
	return theme
}

func (r *SettingsRepository) SetTheme(ctx context.Context, req models.ThemeRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if err := store.SaveJSON(ctx, r.store, store.KeyTheme, req.Theme); err != nil {
		return "", err
	}
	return req.Theme, nil
}

// Streak is read-only; nothing in the application increments it.
func (r *SettingsRepository) Streak(ctx context.Context) int {
	streak := 0
	store.LoadJSON(ctx, r.store, store.KeyStreak, &streak, r.logger)
	if streak < 0 {
		return 0
	}
	return streak
}
