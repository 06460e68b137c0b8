package repositories

import (
	"context"
	"fmt"
	"time"

	"interviewmate/internal/models"
	"interviewmate/internal/store"
	"interviewmate/internal/utils"

	"go.uber.org/zap"
)

// DataRepository exports and wipes everything the application stores.
type DataRepository struct {
	store      store.Store
	interviews *InterviewRepository
	settings   *SettingsRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewDataRepository(s store.Store, interviews *InterviewRepository, settings *SettingsRepository, logger *zap.Logger) *DataRepository {
	return &DataRepository{
		store:      s,
		interviews: interviews,
		settings:   settings,
		logger:     utils.OrNop(logger),
		now:        time.Now,
	}
}

// Export snapshots the profile and the interview list.
func (r *DataRepository) Export(ctx context.Context, session *models.UserSession) models.ExportDocument {
	return models.ExportDocument{
		Profile:    r.settings.Profile(ctx, session),
		Interviews: r.interviews.List(ctx),
		ExportDate: r.now().UTC(),
	}
}

// Wipe clears every stored key and drops cached interviews. Callers are
// expected to have obtained explicit confirmation.
func (r *DataRepository) Wipe(ctx context.Context) error {
	if err := r.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	r.interviews.ClearCache()
	r.logger.Warn("all stored data wiped")
	return nil
}
