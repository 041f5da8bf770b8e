package service

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"psicomapa-backend/internal/database/models"
	"psicomapa-backend/internal/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed templates/*.yaml
var templateFS embed.FS

// QuestionnaireTemplate is the YAML shape of a built-in questionnaire
type QuestionnaireTemplate struct {
	Name        string                   `yaml:"name"`
	Description string                   `yaml:"description"`
	Kind        models.QuestionnaireKind `yaml:"kind"`
	ScaleMin    int                      `yaml:"scale_min"`
	ScaleMax    int                      `yaml:"scale_max"`
	Questions   []struct {
		Text      string          `yaml:"text"`
		Dimension string          `yaml:"dimension"`
		Polarity  models.Polarity `yaml:"polarity"`
	} `yaml:"questions"`
}

// LoadTemplates parses the built-in questionnaire templates
func LoadTemplates() ([]QuestionnaireTemplate, error) {
	files, err := fs.Glob(templateFS, "templates/*.yaml")
	if err != nil {
		return nil, err
	}

	templates := make([]QuestionnaireTemplate, 0, len(files))
	for _, file := range files {
		raw, err := templateFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		var t QuestionnaireTemplate
		if err := yaml.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

func (t *QuestionnaireTemplate) validate() error {
	if t.Name == "" {
		return errors.New("template name is required")
	}
	if !t.Kind.IsValid() {
		return fmt.Errorf("invalid kind %q", t.Kind)
	}
	if t.ScaleMin >= t.ScaleMax {
		return errors.New("scale_min must be lower than scale_max")
	}
	if len(t.Questions) == 0 {
		return errors.New("template has no questions")
	}
	for i, q := range t.Questions {
		if q.Text == "" || q.Dimension == "" || !q.Polarity.IsValid() {
			return fmt.Errorf("question %d is incomplete", i+1)
		}
	}
	return nil
}

func (t *QuestionnaireTemplate) toModel() *models.Questionnaire {
	q := &models.Questionnaire{
		Name:        t.Name,
		Description: t.Description,
		Kind:        t.Kind,
		ScaleMin:    t.ScaleMin,
		ScaleMax:    t.ScaleMax,
		IsTemplate:  true,
		Questions:   make([]models.Question, len(t.Questions)),
	}
	for i, item := range t.Questions {
		q.Questions[i] = models.Question{
			Text:      item.Text,
			Dimension: item.Dimension,
			Position:  i + 1,
			Polarity:  item.Polarity,
		}
	}
	return q
}

// SeedTemplates stores the built-in templates that are not present yet and
// returns how many were created. Running it twice creates nothing the second time.
func (s *QuestionnaireService) SeedTemplates() (int, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return 0, fmt.Errorf("failed to load templates: %w", err)
	}

	created := 0
	for i := range templates {
		t := &templates[i]
		_, err := s.repo.GetTemplateByName(t.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("failed to check template %q: %w", t.Name, err)
		}
		if err := s.repo.Create(t.toModel()); err != nil {
			return created, fmt.Errorf("failed to create template %q: %w", t.Name, err)
		}
		logger.New().WithField("template", t.Name).Info("Seeded questionnaire template")
		created++
	}
	return created, nil
}
