package models

const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"

	TypeTechnical  = "technical"
	TypeBehavioral = "behavioral"
	TypeMixed      = "mixed"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	StatusPending   = "pending"
	StatusCompleted = "completed"

	ThemeLight = "light"
	ThemeDark  = "dark"

	ModeText  = "text"
	ModeVoice = "voice"
)

// defaults applied when a create request leaves a field empty
const (
	DefaultExperience = ExperienceBeginner
	DefaultType       = TypeTechnical
	DefaultDifficulty = DifficultyEasy
	DefaultDuration   = "30"
)

// contains all valid experience levels (in lowercase)
var ValidExperienceLevels = map[string]bool{
	ExperienceBeginner:     true,
	ExperienceIntermediate: true,
	ExperienceAdvanced:     true,
}

// contains all valid interview types (in lowercase)
var ValidInterviewTypes = map[string]bool{
	TypeTechnical:  true,
	TypeBehavioral: true,
	TypeMixed:      true,
}

// contains all valid difficulty levels (in lowercase)
var ValidDifficulties = map[string]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

// durations are minutes, kept as strings to match the stored format
var ValidDurations = map[string]bool{
	"15": true,
	"30": true,
	"45": true,
	"60": true,
}

func ValidExperienceLevelsList() []string {
	return []string{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}
}

func ValidInterviewTypesList() []string {
	return []string{TypeTechnical, TypeBehavioral, TypeMixed}
}

func ValidDifficultiesList() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

func ValidDurationsList() []string {
	return []string{"15", "30", "45", "60"}
}
