package repositories

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"interviewmate/internal/models"
	"interviewmate/internal/presets"
	"interviewmate/internal/store"
	"interviewmate/internal/utils"

	"go.uber.org/zap"
)

// date layout of the stored "date" field
const DateLayout = "1/2/2006"

type Option func(*InterviewRepository)

// WithClock overrides time.Now for ids and dates.
func WithClock(now func() time.Time) Option {
	return func(r *InterviewRepository) {
		r.now = now
	}
}

// InterviewRepository owns the "interviews" array. It keeps an in-memory
// copy that is loaded on first use and dropped by ClearCache.
type InterviewRepository struct {
	store        store.Store
	achievements *AchievementRepository
	logger       *zap.Logger
	now          func() time.Time

	mu     sync.Mutex
	cache  []models.Interview
	loaded bool
	lastID int64
}

func NewInterviewRepository(s store.Store, achievements *AchievementRepository, logger *zap.Logger, opts ...Option) *InterviewRepository {
	r := &InterviewRepository{
		store:        s,
		achievements: achievements,
		logger:       utils.OrNop(logger),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create validates req and appends a pending interview owned by userID.
// On a validation error nothing is written.
func (r *InterviewRepository) Create(ctx context.Context, req models.CreateInterviewRequest, userID string) (models.Interview, error) {
	if err := req.Validate(); err != nil {
		return models.Interview{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load(ctx)
	now := r.now()
	iv := models.Interview{
		ID:           r.nextID(now, list),
		Role:         req.Role,
		Experience:   req.Experience,
		Type:         req.Type,
		Difficulty:   req.Difficulty,
		Duration:     req.Duration,
		Technologies: req.Technologies,
		Focus:        req.Focus,
		Status:       models.StatusPending,
		Date:         now.Format(DateLayout),
		UserID:       userID,
		Score:        0,
	}

	updated := append(models.CloneInterviews(list), iv)
	if err := r.persist(ctx, updated); err != nil {
		return models.Interview{}, err
	}

	r.logger.Info("interview created", zap.String("interview_id", iv.ID), zap.String("role", iv.Role))
	return iv.Clone(), nil
}

// CreateFromTemplate creates a pending interview pre-filled from a preset.
func (r *InterviewRepository) CreateFromTemplate(ctx context.Context, templateID int, userID string) (models.Interview, error) {
	tmpl, ok := presets.Get(templateID)
	if !ok {
		return models.Interview{}, ErrTemplateNotFound
	}
	return r.Create(ctx, tmpl.Request(), userID)
}

// List returns every interview in creation order.
func (r *InterviewRepository) List(ctx context.Context) []models.Interview {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.CloneInterviews(r.load(ctx))
}

func (r *InterviewRepository) Get(ctx context.Context, id string) (models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, iv := range r.load(ctx) {
		if iv.ID == id {
			return iv.Clone(), nil
		}
	}
	return models.Interview{}, ErrInterviewNotFound
}

// Update replaces the record with the same id. Unknown ids are ignored.
// Status and score keep their stored values; only Complete changes them.
func (r *InterviewRepository) Update(ctx context.Context, record models.Interview) error {
	if record.Score < 0 || record.Score > 100 {
		return ErrInvalidScore
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := models.CloneInterviews(r.load(ctx))
	for i := range list {
		if list[i].ID == record.ID {
			updated := record.Clone()
			updated.Status = list[i].Status
			updated.Score = list[i].Score
			list[i] = updated
			return r.persist(ctx, list)
		}
	}
	return nil
}

// Complete moves a pending interview to completed with the given score.
func (r *InterviewRepository) Complete(ctx context.Context, id string, score int) (models.Interview, error) {
	if score < 0 || score > 100 {
		return models.Interview{}, ErrInvalidScore
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := models.CloneInterviews(r.load(ctx))
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].IsCompleted() {
			return models.Interview{}, ErrAlreadyCompleted
		}
		list[i].Status = models.StatusCompleted
		list[i].Score = score
		if err := r.persist(ctx, list); err != nil {
			return models.Interview{}, err
		}
		r.logger.Info("interview completed", zap.String("interview_id", id), zap.Int("score", score))
		return list[i].Clone(), nil
	}
	return models.Interview{}, ErrInterviewNotFound
}

// Delete removes the interview with id. Deleting an unknown id is a no-op.
func (r *InterviewRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load(ctx)
	updated := make([]models.Interview, 0, len(list))
	for _, iv := range list {
		if iv.ID != id {
			updated = append(updated, iv.Clone())
		}
	}
	if len(updated) == len(list) {
		return nil
	}
	if err := r.persist(ctx, updated); err != nil {
		return err
	}
	r.logger.Info("interview deleted", zap.String("interview_id", id))
	return nil
}

// ClearCache drops the in-memory copy; the stored list is kept.
func (r *InterviewRepository) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = nil
	r.loaded = false
}

// load must be called with mu held.
func (r *InterviewRepository) load(ctx context.Context) []models.Interview {
	if r.loaded {
		return r.cache
	}

	var list []models.Interview
	store.LoadJSON(ctx, r.store, store.KeyInterviews, &list, r.logger)
	r.cache = list
	r.loaded = true
	return r.cache
}

// persist writes the whole array, then refreshes achievements. Achievement
// failures are logged only.
func (r *InterviewRepository) persist(ctx context.Context, list []models.Interview) error {
	if list == nil {
		list = []models.Interview{}
	}
	if err := store.SaveJSON(ctx, r.store, store.KeyInterviews, list); err != nil {
		return fmt.Errorf("failed to save interviews: %w", err)
	}
	r.cache = list
	r.loaded = true

	if r.achievements != nil {
		if _, err := r.achievements.Refresh(ctx, list); err != nil {
			r.logger.Warn("failed to refresh achievements", zap.Error(err))
		}
	}
	return nil
}

// nextID is the creation time in unix milliseconds, bumped past any id
// already issued or stored so ids stay unique within the list.
func (r *InterviewRepository) nextID(now time.Time, list []models.Interview) string {
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}

	taken := make(map[string]bool, len(list))
	for _, iv := range list {
		taken[iv.ID] = true
	}
	for taken[strconv.FormatInt(id, 10)] {
		id++
	}

	r.lastID = id
	return strconv.FormatInt(id, 10)
}
