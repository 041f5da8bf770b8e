package models

import (
	"time"

	"github.com/google/uuid"
)

// Response is one anonymous submission to an assessment
type Response struct {
	BaseModel
	AssessmentID uuid.UUID `json:"assessment_id" gorm:"type:uuid;not null;index"`
	Department   string    `json:"department" gorm:"size:100;index"`
	SubmittedAt  time.Time `json:"submitted_at" gorm:"not null"`

	Answers    []Answer    `json:"answers,omitempty" gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE"`
	Assessment *Assessment `json:"-" gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Response
func (Response) TableName() string {
	return "responses"
}

// Answer is the value given to one question inside a response
type Answer struct {
	BaseModel
	ResponseID uuid.UUID `json:"response_id" gorm:"type:uuid;not null;uniqueIndex:idx_answers_response_question"`
	QuestionID uuid.UUID `json:"question_id" gorm:"type:uuid;not null;uniqueIndex:idx_answers_response_question;index"`
	Value      int       `json:"value" gorm:"not null"`
}

// TableName returns the table name for Answer
func (Answer) TableName() string {
	return "answers"
}

// AnswerRow is the flat projection the analytics consume
type AnswerRow struct {
	ResponseID uuid.UUID
	QuestionID uuid.UUID
	Value      int
	Department string
}
