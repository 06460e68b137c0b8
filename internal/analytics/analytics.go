// Package analytics derives read-only statistics from the interview list.
package analytics

import (
	"math"
	"sort"

	"interviewmate/internal/achievements"
	"interviewmate/internal/models"
)

const topTechnologyLimit = 5

type TechnologyCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Summary struct {
	Total           int               `json:"total"`
	Completed       int               `json:"completed"`
	Pending         int               `json:"pending"`
	AverageScore    int               `json:"average_score"`
	HighestScore    int               `json:"highest_score"`
	LowestScore     int               `json:"lowest_score"`
	TopTechnologies []TechnologyCount `json:"top_technologies"`
}

// Dashboard is the landing-page view: interview stats plus achievement
// progress and the practice streak.
type Dashboard struct {
	Summary
	UnlockedAchievements int `json:"unlocked_achievements"`
	TotalAchievements    int `json:"total_achievements"`
	AchievementProgress  int `json:"achievement_progress"`
	Streak               int `json:"streak"`
}

// Compute aggregates the list. Scores of 0 mean "not scored" and are
// excluded from the score figures.
func Compute(interviews []models.Interview) Summary {
	s := Summary{Total: len(interviews)}

	var scoredSum, scoredCount int
	first := true
	for _, iv := range interviews {
		switch iv.Status {
		case models.StatusCompleted:
			s.Completed++
		case models.StatusPending:
			s.Pending++
		}

		if iv.Score <= 0 {
			continue
		}
		scoredSum += iv.Score
		scoredCount++

		if !iv.IsCompleted() {
			continue
		}
		if first || iv.Score > s.HighestScore {
			s.HighestScore = iv.Score
		}
		if first || iv.Score < s.LowestScore {
			s.LowestScore = iv.Score
		}
		first = false
	}

	if scoredCount > 0 {
		s.AverageScore = roundHalfUp(float64(scoredSum) / float64(scoredCount))
	}
	s.TopTechnologies = TopTechnologies(interviews, topTechnologyLimit)
	return s
}

// TopTechnologies counts technology tags across all interviews, most
// frequent first. Ties keep first-seen order.
func TopTechnologies(interviews []models.Interview, limit int) []TechnologyCount {
	index := make(map[string]int)
	counts := make([]TechnologyCount, 0)
	for _, iv := range interviews {
		for _, tech := range iv.Technologies {
			if i, ok := index[tech]; ok {
				counts[i].Count++
				continue
			}
			index[tech] = len(counts)
			counts = append(counts, TechnologyCount{Name: tech, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// BuildDashboard combines Compute with achievement progress and the streak.
func BuildDashboard(interviews []models.Interview, unlocked []models.Achievement, streak int) Dashboard {
	count := achievements.UnlockedCount(unlocked)
	return Dashboard{
		Summary:              Compute(interviews),
		UnlockedAchievements: count,
		TotalAchievements:    len(unlocked),
		AchievementProgress:  Progress(count, len(unlocked)),
		Streak:               streak,
	}
}

// Progress is done/total as a rounded percentage, 0 for an empty total.
func Progress(done, total int) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(float64(done) / float64(total) * 100)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
