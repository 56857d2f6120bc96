package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartAttemptRequest struct {
	EventID uuid.UUID `json:"event_id" binding:"required"`
}

// AnswerSubmission is the answer to one question. Which fields matter depends
// on the question type: answer_id for single choice, answer_ids for multiple
// choice, text_answer for text and user_order for sequence questions.
type AnswerSubmission struct {
	QuestionID uuid.UUID   `json:"question_id" binding:"required"`
	AnswerID   *uuid.UUID  `json:"answer_id,omitempty"`
	AnswerIDs  []uuid.UUID `json:"answer_ids,omitempty"`
	TextAnswer *string     `json:"text_answer,omitempty"`
	UserOrder  []uuid.UUID `json:"user_order,omitempty"`
}

type SubmitAnswersRequest struct {
	Answers []AnswerSubmission `json:"answers" binding:"required,dive"`
}

type GradeAnswerRequest struct {
	IsCorrect *bool `json:"is_correct" binding:"required"`
}

type EventCreateRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description,omitempty"`
	EventTypeID *uuid.UUID `json:"event_type_id,omitempty"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `json:"status,omitempty" binding:"omitempty,oneof=planned active completed cancelled"`
}

type AddParticipantRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}
