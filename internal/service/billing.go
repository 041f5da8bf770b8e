package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/notify"
	"psicomapa-backend/internal/observability"
	"psicomapa-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

//go:generate mockgen -source=billing.go -destination=../mocks/checkout_mocks.go -package=mocks CheckoutSessionCreator

// CheckoutSessionCreator creates Stripe checkout sessions. *session.Client
// from stripe-go satisfies it.
type CheckoutSessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// BillingDependencies groups the collaborators of BillingService
type BillingDependencies struct {
	Subscriptions repository.SubscriptionRepositoryInterface
	WebhookEvents repository.WebhookEventRepositoryInterface
	Organizations repository.OrganizationRepositoryInterface
	Profiles      repository.ProfileRepositoryInterface
	Catalog       *PlanCatalog
	// Checkout is nil when STRIPE_SECRET_KEY is not configured
	Checkout      CheckoutSessionCreator
	WebhookSecret string
	AppURL        string
	Mailer        notify.Mailer
	Events        notify.Publisher
	Metrics       *observability.Metrics
	Tracer        trace.Tracer
	Validator     *validator.Validate
}

// BillingService sells plans through Stripe and mirrors subscription state
type BillingService struct {
	BillingDependencies
}

// NewBillingService creates a new billing service
func NewBillingService(deps BillingDependencies) *BillingService {
	deps.Tracer = tracerOrNoop(deps.Tracer)
	return &BillingService{BillingDependencies: deps}
}

// CheckoutRequest starts a subscription checkout. AcceptTerms mirrors the
// terms of service checkbox and must be true.
type CheckoutRequest struct {
	PlanID      string `json:"plan_id" validate:"required"`
	AcceptTerms bool   `json:"accept_terms"`
}

// CheckoutResponse carries the hosted checkout URL
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// SubscriptionResponse is the organization's billing state
type SubscriptionResponse struct {
	OrganizationID    uuid.UUID                 `json:"organization_id"`
	PlanID            string                    `json:"plan_id"`
	Plan              *Plan                     `json:"plan,omitempty"`
	Status            models.SubscriptionStatus `json:"status"`
	Entitled          bool                      `json:"entitled"`
	CurrentPeriodEnd  *string                   `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd bool                      `json:"cancel_at_period_end"`
}

// Plans returns the public plan catalogue
func (s *BillingService) Plans() []Plan {
	return s.Catalog.All()
}

// CreateCheckout creates a Stripe checkout session for the caller's organization
func (s *BillingService) CreateCheckout(ctx context.Context, identity *auth.Identity, req *CheckoutRequest) (*CheckoutResponse, error) {
	if err := s.Validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if !req.AcceptTerms {
		return nil, apperrors.ErrTermsNotAccepted
	}
	orgID, err := resolveOrganization(identity, nil)
	if err != nil {
		return nil, err
	}
	if s.Checkout == nil {
		return nil, apperrors.ErrStripeNotConfigured
	}
	plan, err := s.Catalog.Get(req.PlanID)
	if err != nil {
		return nil, err
	}
	if plan.StripePriceID == "" {
		return nil, apperrors.ErrCheckoutPriceNotFound
	}

	base := strings.TrimRight(s.AppURL, "/")
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		ClientReferenceID: stripe.String(orgID.String()),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(plan.StripePriceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(base + "/assinatura?status=sucesso&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(base + "/planos?status=cancelado"),
		Locale:     stripe.String("pt-BR"),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"organization_id": orgID.String(),
				"plan_id":         plan.ID,
			},
		},
	}
	params.AddMetadata("organization_id", orgID.String())
	params.AddMetadata("plan_id", plan.ID)
	params.AddMetadata("terms_accepted_by", identity.Email)

	existing, err := s.Subscriptions.GetByOrganizationID(orgID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if existing != nil && existing.StripeCustomerID != "" {
		params.Customer = stripe.String(existing.StripeCustomerID)
	} else {
		params.CustomerEmail = stripe.String(identity.Email)
	}

	sess, err := s.Checkout.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return &CheckoutResponse{SessionID: sess.ID, URL: sess.URL}, nil
}

// GetSubscription returns the caller organization's subscription
func (s *BillingService) GetSubscription(identity *auth.Identity, orgID *uuid.UUID) (*SubscriptionResponse, error) {
	resolved, err := resolveOrganization(identity, orgID)
	if err != nil {
		return nil, err
	}
	sub, err := s.Subscriptions.GetByOrganizationID(resolved)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSubscriptionNotFound, "get subscription")
	}

	resp := &SubscriptionResponse{
		OrganizationID:    sub.OrganizationID,
		PlanID:            sub.PlanID,
		Status:            sub.Status,
		Entitled:          sub.Status.IsEntitled(),
		CurrentPeriodEnd:  formatTimePtr(sub.CurrentPeriodEnd),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if plan, err := s.Catalog.Get(sub.PlanID); err == nil {
		resp.Plan = plan
	}
	return resp, nil
}
