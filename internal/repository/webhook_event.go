package repository

import (
	"psicomapa-backend/internal/database/models"

	"gorm.io/gorm"
)

// WebhookEventRepository records processed Stripe events
type WebhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository creates a new webhook event repository
func NewWebhookEventRepository(db *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

// Create inserts the event. A second insert of the same event id fails with
// gorm.ErrDuplicatedKey when the connection translates errors.
func (r *WebhookEventRepository) Create(event *models.StripeWebhookEvent) error {
	return r.db.Create(event).Error
}

// Exists reports whether the event id was recorded
func (r *WebhookEventRepository) Exists(eventID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.StripeWebhookEvent{}).Where("event_id = ?", eventID).Count(&count).Error
	return count > 0, err
}

// Delete forgets an event id so a redelivery is processed again
func (r *WebhookEventRepository) Delete(eventID string) error {
	return r.db.Where("event_id = ?", eventID).Delete(&models.StripeWebhookEvent{}).Error
}
