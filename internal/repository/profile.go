package repository

import (
	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByOrganizationID retrieves the profiles of an organization with pagination
func (r *ProfileRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	var total int64

	base := r.db.Model(&models.Profile{}).Where("organization_id = ?", orgID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Order("full_name ASC").Limit(limit).Offset(offset).Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// GetActiveByRole returns active profiles of an organization holding role
func (r *ProfileRepository) GetActiveByRole(orgID uuid.UUID, role models.Role) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.
		Where("organization_id = ? AND role = ? AND is_active = ?", orgID, role, true).
		Order("email ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// Update updates a profile
func (r *ProfileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// Delete deletes a profile
func (r *ProfileRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Profile{}, "id = ?", id).Error
}
