package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus mirrors Stripe's subscription statuses that matter to us
type SubscriptionStatus string

const (
	SubscriptionStatusActive     SubscriptionStatus = "active"
	SubscriptionStatusTrialing   SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue    SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled   SubscriptionStatus = "canceled"
	SubscriptionStatusIncomplete SubscriptionStatus = "incomplete"
	SubscriptionStatusUnpaid     SubscriptionStatus = "unpaid"
)

// IsEntitled reports whether the status grants access to paid features
func (s SubscriptionStatus) IsEntitled() bool {
	return s == SubscriptionStatusActive || s == SubscriptionStatusTrialing
}

// Subscription is the billing state of an organization
type Subscription struct {
	BaseModel
	OrganizationID       uuid.UUID          `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex"`
	StripeCustomerID     string             `json:"stripe_customer_id" gorm:"size:100;index"`
	StripeSubscriptionID *string            `json:"stripe_subscription_id,omitempty" gorm:"size:100;uniqueIndex"`
	PlanID               string             `json:"plan_id" gorm:"size:50;not null"`
	Status               SubscriptionStatus `json:"status" gorm:"type:varchar(30);not null"`
	CurrentPeriodEnd     *time.Time         `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd    bool               `json:"cancel_at_period_end" gorm:"not null;default:false"`

	Organization *Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}

// StripeWebhookEvent records a processed Stripe event id. The primary key is
// the idempotency guard: a second insert of the same id fails.
type StripeWebhookEvent struct {
	EventID     string    `json:"event_id" gorm:"primaryKey;size:255"`
	Type        string    `json:"type" gorm:"size:100;not null"`
	ProcessedAt time.Time `json:"processed_at" gorm:"not null"`
}

// TableName returns the table name for StripeWebhookEvent
func (StripeWebhookEvent) TableName() string {
	return "stripe_webhook_events"
}
