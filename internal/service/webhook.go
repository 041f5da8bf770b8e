package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/logger"
	"psicomapa-backend/internal/notify"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// Stripe event types the webhook acts on
const (
	StripeCheckoutCompleted    = "checkout.session.completed"
	StripeSubscriptionCreated  = "customer.subscription.created"
	StripeSubscriptionUpdated  = "customer.subscription.updated"
	StripeSubscriptionDeleted  = "customer.subscription.deleted"
	StripeInvoicePaymentFailed = "invoice.payment_failed"
	StripeInvoicePaid          = "invoice.paid"
)

const (
	webhookOutcomeProcessed = "processed"
	webhookOutcomeIgnored   = "ignored"
	webhookOutcomeDuplicate = "duplicate"
	webhookOutcomeFailed    = "failed"
	webhookOutcomeInvalid   = "invalid_signature"
)

const (
	metadataOrganizationID = "organization_id"
	metadataPlanID         = "plan_id"

	stripeStatusIncompleteExpired = "incomplete_expired"
	stripeStatusPaused            = "paused"

	// plan assumed when a completed checkout carries no known plan id
	fallbackPlanID = "basic"
)

// WebhookResult is the acknowledgement returned to Stripe
type WebhookResult struct {
	Received  bool   `json:"received"`
	Duplicate bool   `json:"duplicate,omitempty"`
	EventType string `json:"event_type,omitempty"`
}

// HandleWebhook verifies and processes one Stripe delivery. Each event id is
// recorded before processing so redeliveries are acknowledged without side
// effects. When processing fails the record is removed and an error returned,
// so Stripe retries.
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	if s.WebhookSecret == "" {
		return nil, apperrors.ErrWebhookSecretNotSet
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, s.WebhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		s.Metrics.RecordWebhook("unknown", webhookOutcomeInvalid)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidWebhookSignature, err)
	}
	eventType := string(event.Type)

	ctx, span := s.Tracer.Start(ctx, "stripe.webhook", trace.WithAttributes(
		attribute.String("stripe.event_id", event.ID),
		attribute.String("stripe.event_type", eventType),
	))
	defer span.End()

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":   event.ID,
		"event_type": eventType,
	})

	duplicate, recorded := s.recordEvent(event.ID, eventType, log)
	if duplicate {
		log.Info("Duplicate Stripe event acknowledged")
		s.Metrics.RecordWebhook(eventType, webhookOutcomeDuplicate)
		span.SetAttributes(attribute.Bool("stripe.duplicate", true))
		return &WebhookResult{Received: true, Duplicate: true, EventType: eventType}, nil
	}

	handled, err := s.dispatch(ctx, &event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.Metrics.RecordWebhook(eventType, webhookOutcomeFailed)
		if recorded {
			if delErr := s.WebhookEvents.Delete(event.ID); delErr != nil {
				log.WithError(delErr).Error("Failed to release Stripe event after processing error")
			}
		}
		log.WithError(err).Error("Failed to process Stripe event")
		return nil, err
	}

	if handled {
		s.Metrics.RecordWebhook(eventType, webhookOutcomeProcessed)
	} else {
		s.Metrics.RecordWebhook(eventType, webhookOutcomeIgnored)
	}
	return &WebhookResult{Received: true, EventType: eventType}, nil
}

// recordEvent inserts the idempotency row. A failure other than a duplicate
// is logged and processing continues without a record.
func (s *BillingService) recordEvent(eventID, eventType string, log *logger.Logger) (duplicate bool, recorded bool) {
	err := s.WebhookEvents.Create(&models.StripeWebhookEvent{
		EventID:     eventID,
		Type:        eventType,
		ProcessedAt: time.Now().UTC(),
	})
	if err == nil {
		return false, true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, false
	}
	// not every driver translates unique violations
	if exists, existsErr := s.WebhookEvents.Exists(eventID); existsErr == nil && exists {
		return true, false
	}
	log.WithError(err).Warn("Failed to record Stripe event, processing anyway")
	return false, false
}

// dispatch routes the event to its handler. It reports false for event types
// that are acknowledged and ignored.
func (s *BillingService) dispatch(ctx context.Context, event *stripe.Event) (bool, error) {
	if event.Data == nil {
		return false, fmt.Errorf("event %s has no data", event.ID)
	}
	raw := event.Data.Raw

	switch string(event.Type) {
	case StripeCheckoutCompleted:
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(raw, &cs); err != nil {
			return false, fmt.Errorf("failed to decode checkout session: %w", err)
		}
		return true, s.handleCheckoutCompleted(ctx, &cs)
	case StripeSubscriptionCreated, StripeSubscriptionUpdated:
		var sub stripe.Subscription
		if err := json.Unmarshal(raw, &sub); err != nil {
			return false, fmt.Errorf("failed to decode subscription: %w", err)
		}
		return true, s.handleSubscriptionChanged(ctx, &sub)
	case StripeSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(raw, &sub); err != nil {
			return false, fmt.Errorf("failed to decode subscription: %w", err)
		}
		return true, s.handleSubscriptionDeleted(ctx, &sub)
	case StripeInvoicePaymentFailed:
		var inv stripe.Invoice
		if err := json.Unmarshal(raw, &inv); err != nil {
			return false, fmt.Errorf("failed to decode invoice: %w", err)
		}
		return true, s.handleInvoicePaymentFailed(ctx, &inv)
	case StripeInvoicePaid:
		var inv stripe.Invoice
		if err := json.Unmarshal(raw, &inv); err != nil {
			return false, fmt.Errorf("failed to decode invoice: %w", err)
		}
		return true, s.handleInvoicePaid(ctx, &inv)
	default:
		return false, nil
	}
}

func (s *BillingService) handleCheckoutCompleted(ctx context.Context, cs *stripe.CheckoutSession) error {
	log := logger.WithContext(ctx).WithField("checkout_session", cs.ID)

	ref := cs.ClientReferenceID
	if ref == "" {
		ref = cs.Metadata[metadataOrganizationID]
	}
	orgID, err := uuid.Parse(ref)
	if err != nil {
		log.WithField("client_reference_id", ref).Warn("Checkout session without a valid organization reference")
		return nil
	}
	if _, err := s.Organizations.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithField("organization_id", orgID).Warn("Checkout session for unknown organization")
			return nil
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	planID := cs.Metadata[metadataPlanID]
	if _, err := s.Catalog.Get(planID); err != nil {
		planID = fallbackPlanID
	}

	sub := &models.Subscription{
		OrganizationID: orgID,
		PlanID:         planID,
		Status:         models.SubscriptionStatusActive,
	}
	if cs.Customer != nil {
		sub.StripeCustomerID = cs.Customer.ID
	}
	if cs.Subscription != nil && cs.Subscription.ID != "" {
		id := cs.Subscription.ID
		sub.StripeSubscriptionID = &id
	}
	if err := s.Subscriptions.Upsert(sub); err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	s.Events.Publish(ctx, notify.NewEvent(notify.EventSubscriptionActivated, orgID.String(), map[string]interface{}{
		"plan_id":            planID,
		"stripe_customer_id": sub.StripeCustomerID,
	}))
	log.WithFields(map[string]interface{}{"organization_id": orgID, "plan_id": planID}).Info("Subscription activated from checkout")
	return nil
}

func (s *BillingService) handleSubscriptionChanged(ctx context.Context, stripeSub *stripe.Subscription) error {
	log := logger.WithContext(ctx).WithField("stripe_subscription_id", stripeSub.ID)
	local, err := s.findSubscription(stripeSub.ID, customerID(stripeSub.Customer), stripeSub.Metadata)
	if err != nil {
		return err
	}
	created := false
	if local == nil {
		// Stripe may deliver the subscription before the checkout session
		local, err = s.subscriptionFromMetadata(stripeSub.Metadata)
		if err != nil {
			return err
		}
		if local == nil {
			log.Warn("Subscription event for unknown organization")
			return nil
		}
		created = true
	}

	id := stripeSub.ID
	local.StripeSubscriptionID = &id
	if c := customerID(stripeSub.Customer); c != "" {
		local.StripeCustomerID = c
	}
	local.Status = mapStripeStatus(stripeSub.Status)
	local.CancelAtPeriodEnd = stripeSub.CancelAtPeriodEnd
	if stripeSub.CurrentPeriodEnd > 0 {
		end := time.Unix(stripeSub.CurrentPeriodEnd, 0).UTC()
		local.CurrentPeriodEnd = &end
	}
	if planID := s.planOf(stripeSub); planID != "" {
		local.PlanID = planID
	}

	if created {
		if err := s.Subscriptions.Upsert(local); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}
		log.WithField("organization_id", local.OrganizationID).Info("Subscription created from subscription event")
		return nil
	}
	if err := s.Subscriptions.Update(local); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

// subscriptionFromMetadata starts a local row for the organization named in
// the subscription metadata. It returns nil when the organization is unknown.
func (s *BillingService) subscriptionFromMetadata(metadata map[string]string) (*models.Subscription, error) {
	orgID, err := uuid.Parse(metadata[metadataOrganizationID])
	if err != nil {
		return nil, nil
	}
	if _, err := s.Organizations.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return &models.Subscription{OrganizationID: orgID, PlanID: fallbackPlanID}, nil
}

func (s *BillingService) handleSubscriptionDeleted(ctx context.Context, stripeSub *stripe.Subscription) error {
	local, err := s.findSubscription(stripeSub.ID, customerID(stripeSub.Customer), stripeSub.Metadata)
	if err != nil {
		return err
	}
	if local == nil {
		logger.WithContext(ctx).WithField("stripe_subscription_id", stripeSub.ID).Warn("Deleted subscription is unknown")
		return nil
	}

	local.Status = models.SubscriptionStatusCanceled
	local.CancelAtPeriodEnd = false
	if err := s.Subscriptions.Update(local); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	s.Events.Publish(ctx, notify.NewEvent(notify.EventSubscriptionCanceled, local.OrganizationID.String(), map[string]interface{}{
		"plan_id": local.PlanID,
	}))
	return nil
}

func (s *BillingService) handleInvoicePaymentFailed(ctx context.Context, inv *stripe.Invoice) error {
	local, err := s.findSubscription(subscriptionID(inv.Subscription), customerID(inv.Customer), nil)
	if err != nil {
		return err
	}
	if local == nil {
		logger.WithContext(ctx).WithField("invoice", inv.ID).Warn("Failed invoice for unknown subscription")
		return nil
	}

	local.Status = models.SubscriptionStatusPastDue
	if err := s.Subscriptions.Update(local); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	amount := formatBRL(inv.AmountDue, string(inv.Currency))
	s.emailPaymentFailed(ctx, local.OrganizationID, amount)
	s.Events.Publish(ctx, notify.NewEvent(notify.EventPaymentFailed, local.OrganizationID.String(), map[string]interface{}{
		"invoice_id": inv.ID,
		"amount_due": inv.AmountDue,
		"currency":   string(inv.Currency),
	}))
	return nil
}

func (s *BillingService) handleInvoicePaid(ctx context.Context, inv *stripe.Invoice) error {
	local, err := s.findSubscription(subscriptionID(inv.Subscription), customerID(inv.Customer), nil)
	if err != nil {
		return err
	}
	if local == nil {
		logger.WithContext(ctx).WithField("invoice", inv.ID).Info("Paid invoice for unknown subscription")
		return nil
	}
	if local.Status == models.SubscriptionStatusActive {
		return nil
	}
	local.Status = models.SubscriptionStatusActive
	if err := s.Subscriptions.Update(local); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

// findSubscription looks the local row up by Stripe subscription id, then by
// customer id, then by the organization id in metadata. It returns nil
// without error when nothing matches.
func (s *BillingService) findSubscription(stripeSubID, customer string, metadata map[string]string) (*models.Subscription, error) {
	lookups := []func() (*models.Subscription, error){}
	if stripeSubID != "" {
		lookups = append(lookups, func() (*models.Subscription, error) { return s.Subscriptions.GetByStripeSubscriptionID(stripeSubID) })
	}
	if customer != "" {
		lookups = append(lookups, func() (*models.Subscription, error) { return s.Subscriptions.GetByStripeCustomerID(customer) })
	}
	if orgID, err := uuid.Parse(metadata[metadataOrganizationID]); err == nil {
		lookups = append(lookups, func() (*models.Subscription, error) { return s.Subscriptions.GetByOrganizationID(orgID) })
	}

	for _, lookup := range lookups {
		sub, err := lookup()
		if err == nil {
			return sub, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to find subscription: %w", err)
		}
	}
	return nil, nil
}

// planOf maps the subscription's price back to a catalogue plan
func (s *BillingService) planOf(sub *stripe.Subscription) string {
	if sub.Items != nil {
		for _, item := range sub.Items.Data {
			if item == nil || item.Price == nil {
				continue
			}
			if plan, ok := s.Catalog.ByStripePrice(item.Price.ID); ok {
				return plan.ID
			}
		}
	}
	if planID := sub.Metadata[metadataPlanID]; planID != "" {
		if _, err := s.Catalog.Get(planID); err == nil {
			return planID
		}
	}
	return ""
}

func (s *BillingService) emailPaymentFailed(ctx context.Context, orgID uuid.UUID, amount string) {
	log := logger.WithContext(ctx).WithField("organization_id", orgID)

	admins, err := s.Profiles.GetActiveByRole(orgID, models.RoleOrgAdmin)
	if err != nil {
		log.WithError(err).Warn("Failed to load organization admins")
		return
	}
	if len(admins) == 0 {
		return
	}
	orgName := ""
	if org, err := s.Organizations.GetByID(orgID); err == nil {
		orgName = org.Name
	}
	to := make([]string, len(admins))
	for i, p := range admins {
		to[i] = p.Email
	}

	msg, err := notify.PaymentFailedEmail(to, notify.PaymentFailedData{
		OrganizationName: orgName,
		AmountDue:        amount,
		AppURL:           strings.TrimRight(s.AppURL, "/"),
	})
	if err != nil {
		log.WithError(err).Error("Failed to render payment failed email")
		return
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		s.Metrics.RecordEmail("payment_failed", "error")
		log.WithError(err).Warn("Failed to send payment failed email")
		return
	}
	s.Metrics.RecordEmail("payment_failed", "sent")
}

// mapStripeStatus folds Stripe's statuses into the ones stored locally
func mapStripeStatus(st stripe.SubscriptionStatus) models.SubscriptionStatus {
	switch string(st) {
	case string(models.SubscriptionStatusActive):
		return models.SubscriptionStatusActive
	case string(models.SubscriptionStatusTrialing):
		return models.SubscriptionStatusTrialing
	case string(models.SubscriptionStatusPastDue):
		return models.SubscriptionStatusPastDue
	case string(models.SubscriptionStatusCanceled), stripeStatusIncompleteExpired:
		return models.SubscriptionStatusCanceled
	case string(models.SubscriptionStatusUnpaid), stripeStatusPaused:
		return models.SubscriptionStatusUnpaid
	default:
		return models.SubscriptionStatusIncomplete
	}
}

func customerID(c *stripe.Customer) string {
	if c == nil {
		return ""
	}
	return c.ID
}

func subscriptionID(sub *stripe.Subscription) string {
	if sub == nil {
		return ""
	}
	return sub.ID
}

// formatBRL renders an amount in cents, e.g. "R$ 199,00"
func formatBRL(cents int64, currency string) string {
	if currency != "" && !strings.EqualFold(currency, "brl") {
		return fmt.Sprintf("%s %d.%02d", strings.ToUpper(currency), cents/100, cents%100)
	}
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}
