// Package achievements holds the fixed achievement catalog and the pure
// rules that unlock entries from the interview list.
package achievements

import "interviewmate/internal/models"

const (
	FirstInterview = 1
	FiveInterviews = 2
	PerfectScore   = 3
	WeekStreak     = 4
	NightOwl       = 5
	EarlyBird      = 6
)

// Catalog returns a fresh copy of the six achievements, all locked.
func Catalog() []models.Achievement {
	return []models.Achievement{
		{ID: FirstInterview, Name: "First Interview", Description: "Complete your first interview", Icon: "🎯"},
		{ID: FiveInterviews, Name: "5 Interviews", Description: "Complete 5 interviews", Icon: "🔥"},
		{ID: PerfectScore, Name: "Perfect Score", Description: "Score 100% in an interview", Icon: "⭐"},
		{ID: WeekStreak, Name: "Week Streak", Description: "Practice for 7 days straight", Icon: "📅"},
		{ID: NightOwl, Name: "Night Owl", Description: "Complete an interview after 10 PM", Icon: "🦉"},
		{ID: EarlyBird, Name: "Early Bird", Description: "Complete an interview before 7 AM", Icon: "🌅"},
	}
}

// Evaluate returns a copy of current with every earned achievement
// unlocked. Flags never go back to false and entries absent from current
// are not added. Week Streak, Night Owl and Early Bird have no rule yet.
func Evaluate(interviews []models.Interview, current []models.Achievement) []models.Achievement {
	completed := 0
	perfect := false
	for _, iv := range interviews {
		if iv.IsCompleted() {
			completed++
		}
		if iv.Score == 100 {
			perfect = true
		}
	}

	earned := map[int]bool{
		FirstInterview: completed >= 1,
		FiveInterviews: completed >= 5,
		PerfectScore:   perfect,
	}

	out := make([]models.Achievement, len(current))
	for i, a := range current {
		if earned[a.ID] {
			a.Unlocked = true
		}
		out[i] = a
	}
	return out
}

// UnlockedCount counts the unlocked entries.
func UnlockedCount(list []models.Achievement) int {
	n := 0
	for _, a := range list {
		if a.Unlocked {
			n++
		}
	}
	return n
}
