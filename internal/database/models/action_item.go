package models

import (
	"time"

	"github.com/google/uuid"
)

// ActionStatus tracks an action plan item
type ActionStatus string

const (
	ActionStatusPending    ActionStatus = "pending"
	ActionStatusInProgress ActionStatus = "in_progress"
	ActionStatusDone       ActionStatus = "done"
)

// IsValid checks if the ActionStatus is valid
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPending, ActionStatusInProgress, ActionStatusDone:
		return true
	}
	return false
}

// ActionItem is a mitigation measure tied to a dimension of an assessment
type ActionItem struct {
	BaseModel
	AssessmentID uuid.UUID    `json:"assessment_id" gorm:"type:uuid;not null;index"`
	Dimension    string       `json:"dimension" gorm:"size:100;not null"`
	Description  string       `json:"description" gorm:"type:text;not null"`
	Owner        string       `json:"owner" gorm:"size:200"`
	DueDate      *time.Time   `json:"due_date,omitempty"`
	Status       ActionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	Assessment *Assessment `json:"-" gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}
