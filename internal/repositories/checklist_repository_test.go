package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"interviewmate/internal/models"
	"interviewmate/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChecklist(t *testing.T) (*ChecklistRepository, *flakyStore) {
	t.Helper()
	s := &flakyStore{MemoryStore: store.NewMemoryStore()}
	r := NewChecklistRepository(s, zap.NewNop())
	r.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return r, s
}

func TestChecklistDefaults(t *testing.T) {
	r, s := newChecklist(t)

	items := r.List(context.Background())
	require.Len(t, items, 8)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "Research the company and role", items[0].Text)
	assert.Equal(t, "Get a good night's sleep", items[7].Text)
	// reading does not persist the defaults
	assert.Empty(t, s.setKeys)
}

func TestChecklistAddToggleDelete(t *testing.T) {
	ctx := context.Background()
	r, _ := newChecklist(t)

	item, err := r.Add(ctx, models.ChecklistItemRequest{Text: "  Bring a notebook "})
	require.NoError(t, err)
	assert.Equal(t, "Bring a notebook", item.Text)
	assert.Equal(t, int64(1700000000000), item.ID)
	assert.False(t, item.Checked)

	second, err := r.Add(ctx, models.ChecklistItemRequest{Text: "Charge laptop"})
	require.NoError(t, err)
	assert.Equal(t, item.ID+1, second.ID)
	assert.Len(t, r.List(ctx), 10)

	toggled, err := r.Toggle(ctx, 3)
	require.NoError(t, err)
	assert.True(t, toggled.Checked)
	toggled, err = r.Toggle(ctx, 3)
	require.NoError(t, err)
	assert.False(t, toggled.Checked)

	_, err = r.Toggle(ctx, 999)
	assert.ErrorIs(t, err, ErrChecklistItemNotFound)

	require.NoError(t, r.Delete(ctx, item.ID))
	require.NoError(t, r.Delete(ctx, item.ID))
	assert.Len(t, r.List(ctx), 9)
}

func TestChecklistAddValidation(t *testing.T) {
	r, s := newChecklist(t)

	_, err := r.Add(context.Background(), models.ChecklistItemRequest{Text: "   "})
	var validationErr *models.ErrorResponse
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "missing_text", validationErr.Code)
	assert.Empty(t, s.setKeys)
}

func TestChecklistWriteFailure(t *testing.T) {
	r, s := newChecklist(t)
	s.failSet = true

	_, err := r.Toggle(context.Background(), 1)
	assert.ErrorIs(t, err, errWriteFailed)
}
