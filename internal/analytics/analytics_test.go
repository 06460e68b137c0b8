package analytics

import (
	"testing"

	"interviewmate/internal/achievements"
	"interviewmate/internal/models"

	"github.com/stretchr/testify/assert"
)

func iv(status string, score int, techs ...string) models.Interview {
	return models.Interview{Status: status, Score: score, Technologies: techs}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.AverageScore)
	assert.Equal(t, 0, s.HighestScore)
	assert.Equal(t, 0, s.LowestScore)
	assert.Empty(t, s.TopTechnologies)
}

func TestComputeScores(t *testing.T) {
	interviews := []models.Interview{
		iv(models.StatusCompleted, 70),
		iv(models.StatusCompleted, 85),
		iv(models.StatusCompleted, 100),
		iv(models.StatusPending, 0),
	}

	s := Compute(interviews)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Completed)
	assert.Equal(t, 1, s.Pending)
	// 255 / 3 = 85
	assert.Equal(t, 85, s.AverageScore)
	assert.Equal(t, 100, s.HighestScore)
	assert.Equal(t, 70, s.LowestScore)
}

func TestComputeAverageRoundsHalfUp(t *testing.T) {
	s := Compute([]models.Interview{
		iv(models.StatusCompleted, 70),
		iv(models.StatusCompleted, 71),
	})
	assert.Equal(t, 71, s.AverageScore)
}

func TestComputeIgnoresUnscoredCompleted(t *testing.T) {
	s := Compute([]models.Interview{
		iv(models.StatusCompleted, 0),
		iv(models.StatusCompleted, 90),
	})
	assert.Equal(t, 90, s.AverageScore)
	assert.Equal(t, 90, s.LowestScore)
}

func TestTopTechnologies(t *testing.T) {
	interviews := []models.Interview{
		iv(models.StatusPending, 0, "Go", "SQL", "Docker"),
		iv(models.StatusPending, 0, "SQL", "Kubernetes"),
		iv(models.StatusPending, 0, "React", "AWS", "SQL", "Go"),
	}

	got := TopTechnologies(interviews, 5)
	assert.Equal(t, []TechnologyCount{
		{Name: "SQL", Count: 3},
		{Name: "Go", Count: 2},
		{Name: "Docker", Count: 1},
		{Name: "Kubernetes", Count: 1},
		{Name: "React", Count: 1},
	}, got)
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, Progress(0, 0))
	assert.Equal(t, 33, Progress(2, 6))
	assert.Equal(t, 50, Progress(3, 6))
	assert.Equal(t, 38, Progress(3, 8))
	assert.Equal(t, 100, Progress(8, 8))
}

func TestBuildDashboard(t *testing.T) {
	list := achievements.Catalog()
	list[0].Unlocked = true
	list[2].Unlocked = true

	d := BuildDashboard([]models.Interview{iv(models.StatusCompleted, 100)}, list, 4)
	assert.Equal(t, 1, d.Completed)
	assert.Equal(t, 100, d.AverageScore)
	assert.Equal(t, 2, d.UnlockedAchievements)
	assert.Equal(t, 6, d.TotalAchievements)
	assert.Equal(t, 33, d.AchievementProgress)
	assert.Equal(t, 4, d.Streak)
}
