package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionSingleChoice   QuestionType = "single_choice"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionText           QuestionType = "text"
	QuestionSequence       QuestionType = "sequence"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionSingleChoice, QuestionMultipleChoice, QuestionText, QuestionSequence:
		return true
	}
	return false
}

// IsChoice reports whether correctness is decided by is_correct flags.
func (t QuestionType) IsChoice() bool {
	return t == QuestionSingleChoice || t == QuestionMultipleChoice
}

type Question struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TestID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"test_id"`
	Text         string         `gorm:"type:text;not null" json:"text"`
	QuestionType QuestionType   `gorm:"not null;default:single_choice" json:"question_type"`
	Order        int            `gorm:"column:order_index;not null" json:"order"`
	Points       int            `gorm:"not null;default:0" json:"points"`
	Answers      []AnswerOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Question) TableName() string { return "test_questions" }

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	ensureID(&q.ID)
	return nil
}

// FindAnswer returns the option with the given id, or nil.
func (q Question) FindAnswer(id uuid.UUID) *AnswerOption {
	for i := range q.Answers {
		if q.Answers[i].ID == id {
			return &q.Answers[i]
		}
	}
	return nil
}

// CorrectAnswerIDs lists the ids of options flagged correct, in slice order.
func (q Question) CorrectAnswerIDs() []uuid.UUID {
	var ids []uuid.UUID
	for _, a := range q.Answers {
		if a.IsCorrect {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
