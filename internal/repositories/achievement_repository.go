package repositories

import (
	"context"
	"sync"

	"interviewmate/internal/achievements"
	"interviewmate/internal/models"
	"interviewmate/internal/store"
	"interviewmate/internal/utils"

	"go.uber.org/zap"
)

type AchievementRepository struct {
	store  store.Store
	logger *zap.Logger
	mu     sync.Mutex
}

func NewAchievementRepository(s store.Store, logger *zap.Logger) *AchievementRepository {
	return &AchievementRepository{store: s, logger: utils.OrNop(logger)}
}

// List returns the stored achievements, seeding and persisting the
// catalog when nothing usable is stored.
func (r *AchievementRepository) List(ctx context.Context) ([]models.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *AchievementRepository) load(ctx context.Context) ([]models.Achievement, error) {
	var list []models.Achievement
	if store.LoadJSON(ctx, r.store, store.KeyAchievements, &list, r.logger) {
		return list, nil
	}

	list = achievements.Catalog()
	if err := store.SaveJSON(ctx, r.store, store.KeyAchievements, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Refresh re-evaluates the unlock rules against interviews and persists
// the result.
func (r *AchievementRepository) Refresh(ctx context.Context, interviews []models.Interview) ([]models.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	updated := achievements.Evaluate(interviews, current)
	if err := store.SaveJSON(ctx, r.store, store.KeyAchievements, updated); err != nil {
		return nil, err
	}

	before := achievements.UnlockedCount(current)
	if after := achievements.UnlockedCount(updated); after > before {
		r.logger.Info("achievements unlocked", zap.Int("unlocked", after), zap.Int("newly_unlocked", after-before))
	}
	return updated, nil
}
