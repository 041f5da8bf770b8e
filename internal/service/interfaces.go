package service

import (
	"context"
	"time"

	"psicomapa-backend/internal/auth"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(ctx context.Context, identity *auth.Identity, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(identity *auth.Identity, id uuid.UUID) (*OrganizationResponse, error)
	GetBySlug(identity *auth.Identity, slug string) (*OrganizationResponse, error)
	GetAll(identity *auth.Identity, query string, page, pageSize int) (*OrganizationListResponse, error)
	Update(identity *auth.Identity, id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(identity *auth.Identity, id uuid.UUID) error
}

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	Create(ctx context.Context, identity *auth.Identity, req *CreateProfileRequest) (*ProfileResponse, error)
	GetByID(identity *auth.Identity, id uuid.UUID) (*ProfileResponse, error)
	ListByOrganization(identity *auth.Identity, orgID *uuid.UUID, page, pageSize int) (*ProfileListResponse, error)
	UpdateRole(identity *auth.Identity, id uuid.UUID, req *UpdateRoleRequest) (*ProfileResponse, error)
	Deactivate(identity *auth.Identity, id uuid.UUID) (*ProfileResponse, error)
	Delete(identity *auth.Identity, id uuid.UUID) error
	Me(identity *auth.Identity) (*MeResponse, error)
}

// QuestionnaireServiceInterface defines the interface for questionnaire service
type QuestionnaireServiceInterface interface {
	Create(identity *auth.Identity, req *CreateQuestionnaireRequest) (*QuestionnaireResponse, error)
	GetByID(identity *auth.Identity, id uuid.UUID) (*QuestionnaireResponse, error)
	ListAvailable(identity *auth.Identity, page, pageSize int) (*QuestionnaireListResponse, error)
	Update(identity *auth.Identity, id uuid.UUID, req *UpdateQuestionnaireRequest) (*QuestionnaireResponse, error)
	Delete(identity *auth.Identity, id uuid.UUID) error
	Clone(identity *auth.Identity, id uuid.UUID, req *CloneQuestionnaireRequest) (*QuestionnaireResponse, error)
	SeedTemplates() (int, error)
}

// AssessmentServiceInterface defines the interface for assessment service
type AssessmentServiceInterface interface {
	Create(identity *auth.Identity, orgID *uuid.UUID, req *CreateAssessmentRequest) (*AssessmentResponse, error)
	GetByID(identity *auth.Identity, id uuid.UUID) (*AssessmentResponse, error)
	List(identity *auth.Identity, orgID *uuid.UUID, status string, page, pageSize int) (*AssessmentListResponse, error)
	Update(identity *auth.Identity, id uuid.UUID, req *UpdateAssessmentRequest) (*AssessmentResponse, error)
	Activate(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*AssessmentResponse, error)
	Close(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*AssessmentResponse, error)
	Delete(identity *auth.Identity, id uuid.UUID) error
}

// AssessmentJobsInterface is what the scheduler runs
type AssessmentJobsInterface interface {
	CloseExpired(ctx context.Context) (int, error)
	NotifyClosingSoon(ctx context.Context, window time.Duration) (int, error)
}

// PublicResponseServiceInterface defines the interface for the anonymous survey endpoints
type PublicResponseServiceInterface interface {
	GetPublicAssessment(ctx context.Context, token string) (*PublicAssessmentResponse, error)
	Submit(ctx context.Context, token, clientKey string, req *SubmitResponseRequest) (*SubmitResponseResult, error)
}

// AnalyticsServiceInterface defines the interface for analytics service
type AnalyticsServiceInterface interface {
	Get(ctx context.Context, identity *auth.Identity, assessmentID uuid.UUID) (*AnalyticsResponse, error)
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	Generate(ctx context.Context, identity *auth.Identity, assessmentID uuid.UUID, format string) (*ReportFile, error)
}

// ActionItemServiceInterface defines the interface for action item service
type ActionItemServiceInterface interface {
	Create(identity *auth.Identity, assessmentID uuid.UUID, req *CreateActionItemRequest) (*ActionItemResponse, error)
	ListByAssessment(identity *auth.Identity, assessmentID uuid.UUID) ([]ActionItemResponse, error)
	Update(identity *auth.Identity, id uuid.UUID, req *UpdateActionItemRequest) (*ActionItemResponse, error)
	Delete(identity *auth.Identity, id uuid.UUID) error
}

// BillingServiceInterface defines the interface for billing service
type BillingServiceInterface interface {
	Plans() []Plan
	CreateCheckout(ctx context.Context, identity *auth.Identity, req *CheckoutRequest) (*CheckoutResponse, error)
	GetSubscription(identity *auth.Identity, orgID *uuid.UUID) (*SubscriptionResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)
}

// DevSeedServiceInterface defines the interface for development seeding
type DevSeedServiceInterface interface {
	SeedResponses(ctx context.Context, identity *auth.Identity, req *SeedResponsesRequest) (*SeedResponsesResult, error)
}

// Compile-time interface checks
var (
	_ OrganizationServiceInterface   = (*OrganizationService)(nil)
	_ ProfileServiceInterface        = (*ProfileService)(nil)
	_ QuestionnaireServiceInterface  = (*QuestionnaireService)(nil)
	_ AssessmentServiceInterface     = (*AssessmentService)(nil)
	_ AssessmentJobsInterface        = (*AssessmentService)(nil)
	_ PublicResponseServiceInterface = (*PublicResponseService)(nil)
	_ AnalyticsServiceInterface      = (*AnalyticsService)(nil)
	_ ReportServiceInterface         = (*ReportService)(nil)
	_ ActionItemServiceInterface     = (*ActionItemService)(nil)
	_ BillingServiceInterface        = (*BillingService)(nil)
	_ DevSeedServiceInterface        = (*DevSeedService)(nil)
	_ CacheInvalidator               = (*AnalyticsService)(nil)
)
