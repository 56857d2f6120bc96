package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttemptAnswer is the submitted answer for one question of an attempt.
type AttemptAnswer struct {
	ID         uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	AttemptID  uuid.UUID                      `gorm:"type:uuid;not null;uniqueIndex:idx_attempt_question" json:"attempt_id"`
	QuestionID uuid.UUID                      `gorm:"type:uuid;not null;uniqueIndex:idx_attempt_question" json:"question_id"`
	AnswerID   *uuid.UUID                     `gorm:"type:uuid" json:"answer_id,omitempty"`
	AnswerIDs  datatypes.JSONSlice[uuid.UUID] `json:"answer_ids,omitempty"`
	TextAnswer *string                        `gorm:"type:text" json:"text_answer,omitempty"`
	UserOrder  datatypes.JSONSlice[uuid.UUID] `json:"user_order,omitempty"`
	IsCorrect  bool                           `gorm:"not null;default:false" json:"is_correct"`
	CreatedAt  time.Time                      `json:"created_at"`
	UpdatedAt  time.Time                      `json:"updated_at"`
}

func (AttemptAnswer) TableName() string { return "user_test_answers" }

func (a *AttemptAnswer) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
