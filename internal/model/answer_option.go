package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerOption is one selectable or orderable choice of a question.
// For sequence questions Order defines the reference order and IsCorrect is ignored.
type AnswerOption struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
	Order      int       `gorm:"column:order_index;not null" json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (AnswerOption) TableName() string { return "test_answers" }

func (a *AnswerOption) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
