package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"interviewmate/internal/middleware"
	"interviewmate/internal/models"
	"interviewmate/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistHandler(t *testing.T) {
	a := newTestApp(t, nil)
	h := NewChecklistHandler(a.Checklist, nil)
	add := middleware.ValidateRequest[*models.ChecklistItemRequest]()(http.HandlerFunc(h.AddHandler))

	rec := serve(http.HandlerFunc(h.ListHandler), http.MethodGet, "/api/v1/checklist", "", nil)
	assert.Len(t, decode[[]models.ChecklistItem](t, rec), len(repositories.DefaultChecklist()))

	rec = serve(add, http.MethodPost, "/api/v1/checklist", `{"text":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(add, http.MethodPost, "/api/v1/checklist", `{"text":"Review system design notes"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	item := decode[models.ChecklistItem](t, rec)
	assert.False(t, item.Checked)
	params := map[string]string{"itemID": strconv.FormatInt(item.ID, 10)}

	rec = serve(http.HandlerFunc(h.ToggleHandler), http.MethodPut, "/api/v1/checklist/x/toggle", "", params)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[models.ChecklistItem](t, rec).Checked)

	rec = serve(http.HandlerFunc(h.DeleteHandler), http.MethodDelete, "/api/v1/checklist/x", "", params)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(http.HandlerFunc(h.ToggleHandler), http.MethodPut, "/api/v1/checklist/x/toggle", "", params)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(http.HandlerFunc(h.ToggleHandler), http.MethodPut, "/api/v1/checklist/abc/toggle", "",
		map[string]string{"itemID": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
