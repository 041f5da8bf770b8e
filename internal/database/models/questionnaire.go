package models

import (
	"github.com/google/uuid"
)

// QuestionnaireKind distinguishes psychosocial risk instruments from climate surveys
type QuestionnaireKind string

const (
	QuestionnaireKindPsychosocial QuestionnaireKind = "psychosocial"
	QuestionnaireKindClimate      QuestionnaireKind = "climate"
)

// IsValid checks if the QuestionnaireKind is valid
func (k QuestionnaireKind) IsValid() bool {
	switch k {
	case QuestionnaireKindPsychosocial, QuestionnaireKindClimate:
		return true
	}
	return false
}

// Polarity tells which end of the scale means more risk
type Polarity string

const (
	// PolarityNegative: higher answers mean more risk (e.g. "demands")
	PolarityNegative Polarity = "negative"
	// PolarityPositive: higher answers mean less risk (e.g. "social support")
	PolarityPositive Polarity = "positive"
)

// IsValid checks if the Polarity is valid
func (p Polarity) IsValid() bool {
	return p == PolarityNegative || p == PolarityPositive
}

// Questionnaire is a survey instrument. OrganizationID is nil for global templates.
type Questionnaire struct {
	BaseModel
	OrganizationID *uuid.UUID        `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Name           string            `json:"name" gorm:"not null;size:200"`
	Description    string            `json:"description" gorm:"type:text"`
	Kind           QuestionnaireKind `json:"kind" gorm:"type:varchar(30);not null;default:'psychosocial'"`
	ScaleMin       int               `json:"scale_min" gorm:"not null;default:1"`
	ScaleMax       int               `json:"scale_max" gorm:"not null;default:5"`
	IsTemplate     bool              `json:"is_template" gorm:"not null;default:false"`

	Questions    []Question    `json:"questions,omitempty" gorm:"foreignKey:QuestionnaireID;constraint:OnDelete:CASCADE"`
	Organization *Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Questionnaire
func (Questionnaire) TableName() string {
	return "questionnaires"
}

// Question is a single Likert item
type Question struct {
	BaseModel
	QuestionnaireID uuid.UUID `json:"questionnaire_id" gorm:"type:uuid;not null;index"`
	Text            string    `json:"text" gorm:"type:text;not null"`
	Dimension       string    `json:"dimension" gorm:"size:100;not null;index"`
	Position        int       `json:"position" gorm:"not null"`
	Polarity        Polarity  `json:"polarity" gorm:"type:varchar(20);not null;default:'negative'"`
}

// TableName returns the table name for Question
func (Question) TableName() string {
	return "questions"
}
