package repositories

import (
	"context"
	"sync"
	"time"

	"interviewmate/internal/models"
	"interviewmate/internal/store"
	"interviewmate/internal/utils"

	"go.uber.org/zap"
)

// DefaultChecklist returns the eight preparation items every user starts with.
func DefaultChecklist() []models.ChecklistItem {
	texts := []string{
		"Research the company and role",
		"Prepare answers for common questions",
		"Practice coding problems",
		"Prepare questions to ask the interviewer",
		"Test your internet and equipment (for virtual)",
		"Prepare professional attire",
		"Review your resume",
		"Get a good night's sleep",
	}
	items := make([]models.ChecklistItem, len(texts))
	for i, text := range texts {
		items[i] = models.ChecklistItem{ID: int64(i + 1), Text: text}
	}
	return items
}

type ChecklistRepository struct {
	store  store.Store
	logger *zap.Logger
	now    func() time.Time
	mu     sync.Mutex
}

func NewChecklistRepository(s store.Store, logger *zap.Logger) *ChecklistRepository {
	return &ChecklistRepository{store: s, logger: utils.OrNop(logger), now: time.Now}
}

// List returns the stored checklist, or the defaults when none is stored.
func (r *ChecklistRepository) List(ctx context.Context) []models.ChecklistItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Add appends an unchecked item. Ids are unix milliseconds, bumped past
// existing ids.
func (r *ChecklistRepository) Add(ctx context.Context, req models.ChecklistItemRequest) (models.ChecklistItem, error) {
	if err := req.Validate(); err != nil {
		return models.ChecklistItem{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load(ctx)
	id := r.now().UnixMilli()
	for _, it := range items {
		if it.ID >= id {
			id = it.ID + 1
		}
	}

	item := models.ChecklistItem{ID: id, Text: req.Text}
	if err := store.SaveJSON(ctx, r.store, store.KeyChecklist, append(items, item)); err != nil {
		return models.ChecklistItem{}, err
	}
	return item, nil
}

// Toggle flips the checked flag of item id.
func (r *ChecklistRepository) Toggle(ctx context.Context, id int64) (models.ChecklistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Checked = !items[i].Checked
		if err := store.SaveJSON(ctx, r.store, store.KeyChecklist, items); err != nil {
			return models.ChecklistItem{}, err
		}
		return items[i], nil
	}
	return models.ChecklistItem{}, ErrChecklistItemNotFound
}

// Delete removes item id. Unknown ids are a no-op.
func (r *ChecklistRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load(ctx)
	updated := make([]models.ChecklistItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			updated = append(updated, it)
		}
	}
	if len(updated) == len(items) {
		return nil
	}
	return store.SaveJSON(ctx, r.store, store.KeyChecklist, updated)
}

func (r *ChecklistRepository) load(ctx context.Context) []models.ChecklistItem {
	items := DefaultChecklist()
	store.LoadJSON(ctx, r.store, store.KeyChecklist, &items, r.logger)
	return items
}
