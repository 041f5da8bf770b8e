package repository

import (
	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscriptionRepository handles database operations for subscriptions
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// GetByOrganizationID retrieves the subscription of an organization
func (r *SubscriptionRepository) GetByOrganizationID(orgID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "organization_id = ?", orgID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByStripeSubscriptionID retrieves a subscription by its Stripe id
func (r *SubscriptionRepository) GetByStripeSubscriptionID(stripeID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "stripe_subscription_id = ?", stripeID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByStripeCustomerID retrieves a subscription by its Stripe customer id
func (r *SubscriptionRepository) GetByStripeCustomerID(customerID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "stripe_customer_id = ?", customerID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Upsert inserts the subscription or updates the existing row of the same
// organization. Empty Stripe ids and a nil period end keep the stored values.
func (r *SubscriptionRepository) Upsert(sub *models.Subscription) error {
	columns := []string{"plan_id", "status", "cancel_at_period_end", "updated_at"}
	if sub.StripeCustomerID != "" {
		columns = append(columns, "stripe_customer_id")
	}
	if sub.StripeSubscriptionID != nil {
		columns = append(columns, "stripe_subscription_id")
	}
	if sub.CurrentPeriodEnd != nil {
		columns = append(columns, "current_period_end")
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(sub).Error
}

// Update updates a subscription
func (r *SubscriptionRepository) Update(sub *models.Subscription) error {
	return r.db.Save(sub).Error
}
