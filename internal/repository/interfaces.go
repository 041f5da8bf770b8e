package repository

import (
	"time"

	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	GetByCNPJ(cnpj string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Search(query string, limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// ProfileRepositoryInterface defines the interface for profile repository
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByID(id uuid.UUID) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Profile, int64, error)
	GetActiveByRole(orgID uuid.UUID, role models.Role) ([]models.Profile, error)
	Update(profile *models.Profile) error
	Delete(id uuid.UUID) error
}

// QuestionnaireRepositoryInterface defines the interface for questionnaire repository
type QuestionnaireRepositoryInterface interface {
	Create(q *models.Questionnaire) error
	GetByID(id uuid.UUID) (*models.Questionnaire, error)
	GetTemplateByName(name string) (*models.Questionnaire, error)
	GetByOrganizationAndName(orgID uuid.UUID, name string) (*models.Questionnaire, error)
	GetAvailable(orgID *uuid.UUID, limit, offset int) ([]models.Questionnaire, int64, error)
	Update(q *models.Questionnaire) error
	Delete(id uuid.UUID) error
	CountAssessments(id uuid.UUID) (int64, error)
}

// AssessmentRepositoryInterface defines the interface for assessment repository
type AssessmentRepositoryInterface interface {
	Create(a *models.Assessment) error
	GetByID(id uuid.UUID) (*models.Assessment, error)
	GetWithQuestionnaire(id uuid.UUID) (*models.Assessment, error)
	GetByPublicToken(token string) (*models.Assessment, error)
	GetByOrganizationID(orgID uuid.UUID, status models.AssessmentStatus, limit, offset int) ([]models.Assessment, int64, error)
	CountActive(orgID uuid.UUID) (int64, error)
	GetExpired(now time.Time) ([]models.Assessment, error)
	GetEndingBetween(from, to time.Time) ([]models.Assessment, error)
	Update(a *models.Assessment) error
	Delete(id uuid.UUID) error
}

// ResponseRepositoryInterface defines the interface for response repository
type ResponseRepositoryInterface interface {
	Create(resp *models.Response) error
	CreateBatch(responses []models.Response) error
	CountByAssessment(assessmentID uuid.UUID) (int64, error)
	GetAnswerRows(assessmentID uuid.UUID) ([]models.AnswerRow, error)
}

// SubscriptionRepositoryInterface defines the interface for subscription repository
type SubscriptionRepositoryInterface interface {
	GetByOrganizationID(orgID uuid.UUID) (*models.Subscription, error)
	GetByStripeSubscriptionID(stripeID string) (*models.Subscription, error)
	GetByStripeCustomerID(customerID string) (*models.Subscription, error)
	Upsert(sub *models.Subscription) error
	Update(sub *models.Subscription) error
}

// WebhookEventRepositoryInterface defines the interface for webhook event repository
type WebhookEventRepositoryInterface interface {
	Create(event *models.StripeWebhookEvent) error
	Exists(eventID string) (bool, error)
	Delete(eventID string) error
}

// ActionItemRepositoryInterface defines the interface for action item repository
type ActionItemRepositoryInterface interface {
	Create(item *models.ActionItem) error
	GetByID(id uuid.UUID) (*models.ActionItem, error)
	GetByAssessmentID(assessmentID uuid.UUID) ([]models.ActionItem, error)
	Update(item *models.ActionItem) error
	Delete(id uuid.UUID) error
}

// Compile-time interface checks
var (
	_ OrganizationRepositoryInterface  = (*OrganizationRepository)(nil)
	_ ProfileRepositoryInterface       = (*ProfileRepository)(nil)
	_ QuestionnaireRepositoryInterface = (*QuestionnaireRepository)(nil)
	_ AssessmentRepositoryInterface    = (*AssessmentRepository)(nil)
	_ ResponseRepositoryInterface      = (*ResponseRepository)(nil)
	_ SubscriptionRepositoryInterface  = (*SubscriptionRepository)(nil)
	_ WebhookEventRepositoryInterface  = (*WebhookEventRepository)(nil)
	_ ActionItemRepositoryInterface    = (*ActionItemRepository)(nil)
)
