package testutils

import (
	"fmt"
	"time"

	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:          "Acme Indústria",
		Slug:          "acme-" + id.String()[:8],
		Sector:        "manufacturing",
		EmployeeCount: 120,
	}
}

// WithSlug sets a custom slug for the organization
func (f *OrganizationFactory) WithSlug(slug string) *models.Organization {
	org := f.Create()
	org.Slug = slug
	return org
}

// WithCNPJ sets a CNPJ for the organization
func (f *OrganizationFactory) WithCNPJ(cnpj string) *models.Organization {
	org := f.Create()
	org.CNPJ = &cnpj
	return org
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with default values
func (f *ProfileFactory) Create(orgID uuid.UUID) *models.Profile {
	id := uuid.New()
	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: &orgID,
		Email:          fmt.Sprintf("user-%s@acme.com.br", id.String()[:8]),
		FullName:       "Maria Souza",
		Role:           models.RoleViewer,
		IsActive:       true,
	}
}

// WithRole creates a test Profile with the given role
func (f *ProfileFactory) WithRole(orgID uuid.UUID, role models.Role) *models.Profile {
	p := f.Create(orgID)
	p.Role = role
	return p
}

// QuestionnaireFactory provides methods to create test Questionnaire data
type QuestionnaireFactory struct{}

// NewQuestionnaireFactory creates a new QuestionnaireFactory
func NewQuestionnaireFactory() *QuestionnaireFactory {
	return &QuestionnaireFactory{}
}

// Create creates a 1..5 questionnaire with four questions over two dimensions.
// The last question of each dimension has positive polarity.
func (f *QuestionnaireFactory) Create(orgID *uuid.UUID) *models.Questionnaire {
	qid := uuid.New()
	q := &models.Questionnaire{
		BaseModel: models.BaseModel{
			ID:        qid,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           "Questionário " + qid.String()[:8],
		Description:    "Questionário de teste",
		Kind:           models.QuestionnaireKindPsychosocial,
		ScaleMin:       1,
		ScaleMax:       5,
		IsTemplate:     orgID == nil,
	}
	specs := []struct {
		dimension string
		polarity  models.Polarity
	}{
		{"Exigências quantitativas", models.PolarityNegative},
		{"Exigências quantitativas", models.PolarityPositive},
		{"Apoio social", models.PolarityNegative},
		{"Apoio social", models.PolarityPositive},
	}
	for i, s := range specs {
		q.Questions = append(q.Questions, models.Question{
			BaseModel:       models.BaseModel{ID: uuid.New()},
			QuestionnaireID: qid,
			Text:            fmt.Sprintf("Pergunta %d", i+1),
			Dimension:       s.dimension,
			Position:        i + 1,
			Polarity:        s.polarity,
		})
	}
	return q
}

// AssessmentFactory provides methods to create test Assessment data
type AssessmentFactory struct{}

// NewAssessmentFactory creates a new AssessmentFactory
func NewAssessmentFactory() *AssessmentFactory {
	return &AssessmentFactory{}
}

// Create creates a draft assessment
func (f *AssessmentFactory) Create(orgID, questionnaireID uuid.UUID) *models.Assessment {
	return &models.Assessment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:  orgID,
		QuestionnaireID: questionnaireID,
		Title:           "Avaliação psicossocial 2026",
		Status:          models.AssessmentStatusDraft,
	}
}

// Active creates an active assessment with a public token and no end date
func (f *AssessmentFactory) Active(orgID, questionnaireID uuid.UUID) *models.Assessment {
	a := f.Create(orgID, questionnaireID)
	token := uuid.NewString()
	now := time.Now().Add(-time.Hour)
	a.Status = models.AssessmentStatusActive
	a.PublicToken = &token
	a.StartsAt = &now
	return a
}

// ResponseFactory provides methods to create test Response data
type ResponseFactory struct{}

// NewResponseFactory creates a new ResponseFactory
func NewResponseFactory() *ResponseFactory {
	return &ResponseFactory{}
}

// Create builds a response answering every question with value
func (f *ResponseFactory) Create(assessmentID uuid.UUID, questions []models.Question, department string, value int) *models.Response {
	r := &models.Response{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		AssessmentID: assessmentID,
		Department:   department,
		SubmittedAt:  time.Now(),
	}
	for _, q := range questions {
		r.Answers = append(r.Answers, models.Answer{
			ResponseID: r.ID,
			QuestionID: q.ID,
			Value:      value,
		})
	}
	return r
}

// SubscriptionFactory provides methods to create test Subscription data
type SubscriptionFactory struct{}

// NewSubscriptionFactory creates a new SubscriptionFactory
func NewSubscriptionFactory() *SubscriptionFactory {
	return &SubscriptionFactory{}
}

// Create creates an active subscription on the basic plan
func (f *SubscriptionFactory) Create(orgID uuid.UUID) *models.Subscription {
	subID := "sub_" + uuid.NewString()[:12]
	end := time.Now().AddDate(0, 1, 0)
	return &models.Subscription{
		BaseModel:            models.BaseModel{ID: uuid.New()},
		OrganizationID:       orgID,
		StripeCustomerID:     "cus_" + uuid.NewString()[:12],
		StripeSubscriptionID: &subID,
		PlanID:               "basic",
		Status:               models.SubscriptionStatusActive,
		CurrentPeriodEnd:     &end,
	}
}

// ActionItemFactory provides methods to create test ActionItem data
type ActionItemFactory struct{}

// NewActionItemFactory creates a new ActionItemFactory
func NewActionItemFactory() *ActionItemFactory {
	return &ActionItemFactory{}
}

// Create creates a pending action item
func (f *ActionItemFactory) Create(assessmentID uuid.UUID) *models.ActionItem {
	due := time.Now().AddDate(0, 1, 0)
	return &models.ActionItem{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		AssessmentID: assessmentID,
		Dimension:    "Exigências quantitativas",
		Description:  "Revisar a distribuição de tarefas da equipe",
		Owner:        "RH",
		DueDate:      &due,
		Status:       models.ActionStatusPending,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization  *OrganizationFactory
	Profile       *ProfileFactory
	Questionnaire *QuestionnaireFactory
	Assessment    *AssessmentFactory
	Response      *ResponseFactory
	Subscription  *SubscriptionFactory
	ActionItem    *ActionItemFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:  NewOrganizationFactory(),
		Profile:       NewProfileFactory(),
		Questionnaire: NewQuestionnaireFactory(),
		Assessment:    NewAssessmentFactory(),
		Response:      NewResponseFactory(),
		Subscription:  NewSubscriptionFactory(),
		ActionItem:    NewActionItemFactory(),
	}
}
