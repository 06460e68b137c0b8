package achievements

import (
	"testing"

	"interviewmate/internal/models"

	"github.com/stretchr/testify/assert"
)

func completed(score int) models.Interview {
	return models.Interview{Status: models.StatusCompleted, Score: score}
}

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	assert.Len(t, catalog, 6)
	for i, a := range catalog {
		assert.Equal(t, i+1, a.ID)
		assert.False(t, a.Unlocked)
	}
	assert.Equal(t, "Perfect Score", catalog[2].Name)

	// each call is independent
	catalog[0].Unlocked = true
	assert.False(t, Catalog()[0].Unlocked)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		interviews []models.Interview
		want       []bool
	}{
		{"none", nil, []bool{false, false, false, false, false, false}},
		{"pending only", []models.Interview{{Status: models.StatusPending}}, []bool{false, false, false, false, false, false}},
		{"first", []models.Interview{completed(80)}, []bool{true, false, false, false, false, false}},
		{"five", []models.Interview{completed(70), completed(71), completed(72), completed(73), completed(74)}, []bool{true, true, false, false, false, false}},
		{"four is not five", []models.Interview{completed(70), completed(71), completed(72), completed(73)}, []bool{true, false, false, false, false, false}},
		{"perfect", []models.Interview{completed(100)}, []bool{true, false, true, false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.interviews, Catalog())
			for i, a := range got {
				assert.Equal(t, tt.want[i], a.Unlocked, a.Name)
			}
		})
	}
}

func TestEvaluateNeverRelocks(t *testing.T) {
	current := Catalog()
	current[2].Unlocked = true
	current[4].Unlocked = true

	got := Evaluate(nil, current)
	assert.True(t, got[2].Unlocked)
	assert.True(t, got[4].Unlocked)
}

func TestEvaluateLeavesInputUntouched(t *testing.T) {
	current := Catalog()
	Evaluate([]models.Interview{completed(100)}, current)
	for _, a := range current {
		assert.False(t, a.Unlocked)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	interviews := []models.Interview{completed(100), completed(75)}
	once := Evaluate(interviews, Catalog())
	twice := Evaluate(interviews, once)
	assert.Equal(t, once, twice)
}

func TestEvaluateMatchesByID(t *testing.T) {
	// reordered and partial list
	current := []models.Achievement{
		{ID: PerfectScore, Name: "Perfect Score"},
		{ID: FirstInterview, Name: "First Interview"},
	}
	got := Evaluate([]models.Interview{completed(100)}, current)
	assert.Len(t, got, 2)
	assert.True(t, got[0].Unlocked)
	assert.True(t, got[1].Unlocked)
}

func TestUnlockedCount(t *testing.T) {
	list := Catalog()
	assert.Equal(t, 0, UnlockedCount(list))
	list[0].Unlocked = true
	list[3].Unlocked = true
	assert.Equal(t, 2, UnlockedCount(list))
}
