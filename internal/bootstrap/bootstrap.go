// Package bootstrap loads organizations, profiles and subscriptions from
// YAML files. It provisions the first platform admin and demo tenants, which
// cannot be created through the API before anyone can sign in.
package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"psicomapa-backend/internal/database/models"
	"psicomapa-backend/internal/logger"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// OrganizationData matches one entry of organizations.yaml
type OrganizationData struct {
	Name          string `yaml:"name"`
	Slug          string `yaml:"slug"`
	CNPJ          string `yaml:"cnpj,omitempty"`
	Sector        string `yaml:"sector,omitempty"`
	EmployeeCount int    `yaml:"employee_count,omitempty"`
}

// ProfileData matches one entry of profiles.yaml. UserID is the auth
// provider's id for the account.
type ProfileData struct {
	UserID           string `yaml:"user_id"`
	Email            string `yaml:"email"`
	FullName         string `yaml:"full_name"`
	Role             string `yaml:"role"`
	OrganizationSlug string `yaml:"organization_slug,omitempty"`
}

// SubscriptionData matches one entry of subscriptions.yaml
type SubscriptionData struct {
	OrganizationSlug string `yaml:"organization_slug"`
	PlanID           string `yaml:"plan_id"`
	Status           string `yaml:"status"`
	CurrentPeriodEnd string `yaml:"current_period_end,omitempty"`
}

// Result counts the rows created. Existing rows are left untouched.
type Result struct {
	Organizations int `json:"organizations"`
	Profiles      int `json:"profiles"`
	Subscriptions int `json:"subscriptions"`
}

// Load reads organizations.yaml, profiles.yaml and subscriptions.yaml from
// dataDir. Missing files are skipped. Organizations are matched by slug,
// profiles by email and subscriptions by organization.
func Load(db *gorm.DB, dataDir string) (*Result, error) {
	var orgs []OrganizationData
	if err := readYAML(filepath.Join(dataDir, "organizations.yaml"), "organizations", &orgs); err != nil {
		return nil, err
	}
	var profiles []ProfileData
	if err := readYAML(filepath.Join(dataDir, "profiles.yaml"), "profiles", &profiles); err != nil {
		return nil, err
	}
	var subs []SubscriptionData
	if err := readYAML(filepath.Join(dataDir, "subscriptions.yaml"), "subscriptions", &subs); err != nil {
		return nil, err
	}

	result := &Result{}
	err := db.Transaction(func(tx *gorm.DB) error {
		orgMap := make(map[string]*models.Organization, len(orgs))
		for _, data := range orgs {
			org, created, err := createOrganization(tx, data)
			if err != nil {
				return err
			}
			orgMap[org.Slug] = org
			if created {
				result.Organizations++
			}
		}

		for _, data := range profiles {
			created, err := createProfile(tx, data, orgMap)
			if err != nil {
				return err
			}
			if created {
				result.Profiles++
			}
		}

		for _, data := range subs {
			created, err := createSubscription(tx, data, orgMap)
			if err != nil {
				return err
			}
			if created {
				result.Subscriptions++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"organizations": result.Organizations,
		"profiles":      result.Profiles,
		"subscriptions": result.Subscriptions,
	}).Info("Initial data loaded")
	return result, nil
}

// readYAML decodes the list under key. A missing file leaves target empty.
func readYAML(path, key string, target interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	node, ok := doc[key]
	if !ok {
		return nil
	}
	if err := node.Decode(target); err != nil {
		return fmt.Errorf("decode %s in %s: %w", key, path, err)
	}
	return nil
}

func createOrganization(db *gorm.DB, data OrganizationData) (*models.Organization, bool, error) {
	slug := strings.TrimSpace(data.Slug)
	if slug == "" || strings.TrimSpace(data.Name) == "" {
		return nil, false, fmt.Errorf("organization requires name and slug")
	}

	var org models.Organization
	err := db.Where("slug = ?", slug).First(&org).Error
	if err == nil {
		return &org, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up organization %s: %w", slug, err)
	}

	org = models.Organization{
		Name:          strings.TrimSpace(data.Name),
		Slug:          slug,
		Sector:        data.Sector,
		EmployeeCount: data.EmployeeCount,
	}
	if cnpj := strings.TrimSpace(data.CNPJ); cnpj != "" {
		org.CNPJ = &cnpj
	}
	if err := db.Create(&org).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create organization %s: %w", slug, err)
	}
	return &org, true, nil
}

func createProfile(db *gorm.DB, data ProfileData, orgMap map[string]*models.Organization) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	userID, err := uuid.Parse(data.UserID)
	if err != nil {
		return false, fmt.Errorf("profile %s: invalid user_id: %w", email, err)
	}
	role := models.Role(data.Role)
	if !role.IsValid() {
		return false, fmt.Errorf("profile %s: unknown role %q", email, data.Role)
	}

	var orgID *uuid.UUID
	if data.OrganizationSlug != "" {
		org, ok := orgMap[data.OrganizationSlug]
		if !ok {
			return false, fmt.Errorf("profile %s: unknown organization %q", email, data.OrganizationSlug)
		}
		orgID = &org.ID
	} else if role != models.RolePlatformAdmin {
		return false, fmt.Errorf("profile %s: organization_slug is required for role %s", email, role)
	}

	var existing models.Profile
	err = db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to look up profile %s: %w", email, err)
	}

	profile := models.Profile{
		OrganizationID: orgID,
		Email:          email,
		FullName:       strings.TrimSpace(data.FullName),
		Role:           role,
		IsActive:       true,
	}
	profile.ID = userID
	if err := db.Create(&profile).Error; err != nil {
		return false, fmt.Errorf("failed to create profile %s: %w", email, err)
	}
	return true, nil
}

func createSubscription(db *gorm.DB, data SubscriptionData, orgMap map[string]*models.Organization) (bool, error) {
	org, ok := orgMap[data.OrganizationSlug]
	if !ok {
		return false, fmt.Errorf("subscription: unknown organization %q", data.OrganizationSlug)
	}

	var existing models.Subscription
	err := db.Where("organization_id = ?", org.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to look up subscription of %s: %w", org.Slug, err)
	}

	sub := models.Subscription{
		OrganizationID: org.ID,
		PlanID:         data.PlanID,
		Status:         models.SubscriptionStatus(data.Status),
	}
	if sub.Status == "" {
		sub.Status = models.SubscriptionStatusTrialing
	}
	if data.CurrentPeriodEnd != "" {
		end, err := time.Parse("2006-01-02", data.CurrentPeriodEnd)
		if err != nil {
			return false, fmt.Errorf("subscription of %s: invalid current_period_end: %w", org.Slug, err)
		}
		sub.CurrentPeriodEnd = &end
	}
	if err := db.Create(&sub).Error; err != nil {
		return false, fmt.Errorf("failed to create subscription of %s: %w", org.Slug, err)
	}
	return true, nil
}
