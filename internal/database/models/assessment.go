package models

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentStatus is the campaign lifecycle state
type AssessmentStatus string

const (
	AssessmentStatusDraft  AssessmentStatus = "draft"
	AssessmentStatusActive AssessmentStatus = "active"
	AssessmentStatusClosed AssessmentStatus = "closed"
)

// IsValid checks if the AssessmentStatus is valid
func (s AssessmentStatus) IsValid() bool {
	switch s {
	case AssessmentStatusDraft, AssessmentStatusActive, AssessmentStatusClosed:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving to next
func (s AssessmentStatus) CanTransitionTo(next AssessmentStatus) bool {
	switch s {
	case AssessmentStatusDraft:
		return next == AssessmentStatusActive
	case AssessmentStatusActive:
		return next == AssessmentStatusClosed
	}
	return false
}

// Assessment is one survey campaign of an organization
type Assessment struct {
	BaseModel
	OrganizationID  uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	QuestionnaireID uuid.UUID        `json:"questionnaire_id" gorm:"type:uuid;not null;index"`
	Title           string           `json:"title" gorm:"not null;size:200"`
	Status          AssessmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	PublicToken     *string          `json:"public_token,omitempty" gorm:"uniqueIndex;size:64"`
	StartsAt        *time.Time       `json:"starts_at,omitempty"`
	EndsAt          *time.Time       `json:"ends_at,omitempty" gorm:"index"`
	ClosedAt        *time.Time       `json:"closed_at,omitempty"`
	Departments     StringList       `json:"departments" gorm:"type:text"`
	CreatedBy       *uuid.UUID       `json:"created_by,omitempty" gorm:"type:uuid"`

	Organization  *Organization  `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Questionnaire *Questionnaire `json:"questionnaire,omitempty" gorm:"foreignKey:QuestionnaireID"`
}

// TableName returns the table name for Assessment
func (Assessment) TableName() string {
	return "assessments"
}

// IsOpenAt reports whether the assessment accepts responses at t. Both ends
// of the window are inclusive.
func (a *Assessment) IsOpenAt(t time.Time) bool {
	if a.Status != AssessmentStatusActive {
		return false
	}
	if a.StartsAt != nil && t.Before(*a.StartsAt) {
		return false
	}
	if a.EndsAt != nil && t.After(*a.EndsAt) {
		return false
	}
	return true
}
