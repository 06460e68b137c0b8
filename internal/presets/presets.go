// Package presets holds the quick-start interview templates.
package presets

import "interviewmate/internal/models"

type Template struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Icon         string   `json:"icon"`
	Role         string   `json:"role"`
	Type         string   `json:"type"`
	Difficulty   string   `json:"difficulty"`
	Duration     string   `json:"duration"`
	Technologies []string `json:"technologies"`
	Experience   string   `json:"experience"`
	Focus        string   `json:"focus"`
}

// Request converts the template into a create request.
func (t Template) Request() models.CreateInterviewRequest {
	return models.CreateInterviewRequest{
		Role:         t.Role,
		Experience:   t.Experience,
		Type:         t.Type,
		Difficulty:   t.Difficulty,
		Duration:     t.Duration,
		Technologies: append([]string(nil), t.Technologies...),
		Focus:        t.Focus,
	}
}

// All returns a fresh copy of the built-in templates in display order.
func All() []Template {
	return []Template{
		{
			ID:           1,
			Name:         "FAANG Software Engineer",
			Icon:         "💼",
			Role:         "Software Engineer",
			Type:         models.TypeTechnical,
			Difficulty:   models.DifficultyHard,
			Duration:     "60",
			Technologies: []string{"Data Structures", "Algorithms", "System Design", "Coding"},
			Experience:   models.ExperienceIntermediate,
			Focus:        "Leetcode-style problems, system design, behavioral questions",
		},
		{
			ID:           2,
			Name:         "Frontend Developer",
			Icon:         "🎨",
			Role:         "Frontend Developer",
			Type:         models.TypeTechnical,
			Difficulty:   models.DifficultyMedium,
			Duration:     "45",
			Technologies: []string{"React", "JavaScript", "CSS", "HTML"},
			Experience:   models.ExperienceBeginner,
			Focus:        "Component design, state management",
		},
		{
			ID:           3,
			Name:         "Data Scientist",
			Icon:         "📊",
			Role:         "Data Scientist",
			Type:         models.TypeTechnical,
			Difficulty:   models.DifficultyHard,
			Duration:     "60",
			Technologies: []string{"Python", "Machine Learning", "Statistics", "SQL"},
			Experience:   models.ExperienceAdvanced,
			Focus:        "ML algorithms, data analysis",
		},
		{
			ID:           4,
			Name:         "Product Manager",
			Icon:         "📈",
			Role:         "Product Manager",
			Type:         models.TypeBehavioral,
			Difficulty:   models.DifficultyMedium,
			Duration:     "45",
			Technologies: []string{"Product Strategy", "User Research", "Analytics"},
			Experience:   models.ExperienceIntermediate,
			Focus:        "Product thinking, stakeholder management",
		},
		{
			ID:           5,
			Name:         "Backend Developer",
			Icon:         "🔧",
			Role:         "Backend Developer",
			Type:         models.TypeTechnical,
			Difficulty:   models.DifficultyMedium,
			Duration:     "45",
			Technologies: []string{"Node.js", "Python", "Databases", "APIs"},
			Experience:   models.ExperienceIntermediate,
			Focus:        "API design, db optimization",
		},
		{
			ID:           6,
			Name:         "DevOps Engineer",
			Icon:         "🛠️",
			Role:         "DevOps Engineer",
			Type:         models.TypeTechnical,
			Difficulty:   models.DifficultyHard,
			Duration:     "60",
			Technologies: []string{"Kubernetes", "Docker", "CI/CD", "AWS"},
			Experience:   models.ExperienceAdvanced,
			Focus:        "Infrastructure, automation",
		},
	}
}

// Get looks a template up by id.
func Get(id int) (Template, bool) {
	for _, t := range All() {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
