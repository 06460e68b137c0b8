package prompts

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"interviewmate/internal/models"
)

// embeds all .yaml files in the templates folder into Go program at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// template names and variants
const (
	TemplateGreeting  = "greeting"
	VariantOpening    = "opening"
	TemplateInterview = "interview"
	VariantTurn       = "turn"
)

// PromptProvider renders named prompt templates.
type PromptProvider interface {
	BuildPrompt(name, variant string, data any) (string, error)
	GetTemplates() map[string][]string
}

type PromptManager struct {
	prompts map[string]map[string]*template.Template // name -> variant -> compiled prompt
}

// loaded prompt template
type PromptTemplate struct {
	BasePrompt string            `yaml:"base_prompt"`
	Variants   map[string]string `yaml:"variants"`
}

// InterviewData feeds both the greeting and the per-turn prompt.
type InterviewData struct {
	Role         string
	Type         string
	Difficulty   string
	Duration     string
	Technologies []string
	History      []models.Turn
	Input        string
}

// TechnologyList joins the technologies, or "General" when there are none.
func (d InterviewData) TechnologyList() string {
	if len(d.Technologies) == 0 {
		return "General"
	}
	return strings.Join(d.Technologies, ", ")
}

// Conversation renders the history one "Speaker: text" line per turn.
func (d InterviewData) Conversation() string {
	lines := make([]string, 0, len(d.History))
	for _, turn := range d.History {
		speaker := "Candidate"
		if turn.Role == models.RoleInterviewer {
			speaker = "Interviewer"
		}
		lines = append(lines, speaker+": "+turn.Content)
	}
	return strings.Join(lines, "\n")
}

// NewInterviewData copies the interview fields the prompts use.
func NewInterviewData(iv models.Interview, history []models.Turn, input string) InterviewData {
	return InterviewData{
		Role:         iv.Role,
		Type:         iv.Type,
		Difficulty:   iv.Difficulty,
		Duration:     iv.Duration,
		Technologies: iv.Technologies,
		History:      history,
		Input:        input,
	}
}

// creates a new prompt manager and loads templates
func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{
		prompts: make(map[string]map[string]*template.Template),
	}

	if err := pm.loadPrompts(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	return pm, nil
}

// builds a prompt for the given template and variant
func (pm *PromptManager) BuildPrompt(name, variant string, data any) (string, error) {
	variants, exists := pm.prompts[name]
	if !exists {
		return "", fmt.Errorf("template not found: %s", name)
	}

	tmpl, exists := variants[variant]
	if !exists {
		return "", fmt.Errorf("variant '%s' not found for template '%s'", variant, name)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render %s/%s: %w", name, variant, err)
	}
	return out.String(), nil
}

// GetTemplates lists the loaded templates and their variants, sorted.
func (pm *PromptManager) GetTemplates() map[string][]string {
	out := make(map[string][]string, len(pm.prompts))
	for name, variants := range pm.prompts {
		names := make([]string, 0, len(variants))
		for variant := range variants {
			names = append(names, variant)
		}
		sort.Strings(names)
		out[name] = names
	}
	return out
}

// loadPrompts loads all YAML prompt files from the embedded filesystem
func (pm *PromptManager) loadPrompts() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var promptTemplate PromptTemplate
		if err := yaml.Unmarshal(data, &promptTemplate); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}

		name := strings.TrimSuffix(entry.Name(), ".yaml")
		pm.prompts[name] = make(map[string]*template.Template)

		for variant, body := range promptTemplate.Variants {
			var fullPrompt strings.Builder
			if promptTemplate.BasePrompt != "" {
				fullPrompt.WriteString(promptTemplate.BasePrompt)
				fullPrompt.WriteString("\n\n")
			}
			fullPrompt.WriteString(body)

			tmpl, err := template.New(name + "/" + variant).Option("missingkey=error").Parse(fullPrompt.String())
			if err != nil {
				return fmt.Errorf("failed to compile %s/%s: %w", name, variant, err)
			}
			pm.prompts[name][variant] = tmpl
		}
	}

	return nil
}
