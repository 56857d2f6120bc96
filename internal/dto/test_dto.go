package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
)

// --- Authoring view ---

type AnswerOptionResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsCorrect bool      `json:"is_correct"`
	Order     int       `json:"order"`
}

type QuestionResponse struct {
	ID           uuid.UUID              `json:"id"`
	Text         string                 `json:"text"`
	QuestionType model.QuestionType     `json:"question_type"`
	Order        int                    `json:"order"`
	Points       int                    `json:"points"`
	Answers      []AnswerOptionResponse `json:"answers,omitempty"`
}

// TestDetailResponse is a full test definition including correct answers.
type TestDetailResponse struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty"`
	Type         model.TestType     `json:"type"`
	PassingScore int                `json:"passing_score"`
	TimeLimit    int                `json:"time_limit"`
	Status       model.TestStatus   `json:"status"`
	EventTypeID  *uuid.UUID         `json:"event_type_id,omitempty"`
	CreatedBy    *uuid.UUID         `json:"created_by,omitempty"`
	Questions    []QuestionResponse `json:"questions"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// TestSummaryResponse is used for listing tests.
type TestSummaryResponse struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	Type          model.TestType   `json:"type"`
	Status        model.TestStatus `json:"status"`
	PassingScore  int              `json:"passing_score"`
	TimeLimit     int              `json:"time_limit"`
	EventTypeID   *uuid.UUID       `json:"event_type_id,omitempty"`
	QuestionCount int              `json:"question_count"`
	CreatedAt     time.Time        `json:"created_at"`
}

// --- Taking view: nothing that reveals the answers ---

type TakingAnswerOption struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type TakingQuestion struct {
	ID           uuid.UUID            `json:"id"`
	Text         string               `json:"text"`
	QuestionType model.QuestionType   `json:"question_type"`
	Order        int                  `json:"order"`
	Points       int                  `json:"points"`
	Answers      []TakingAnswerOption `json:"answers,omitempty"`
}

type TakingTestResponse struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	Type         model.TestType   `json:"type"`
	PassingScore int              `json:"passing_score"`
	TimeLimit    int              `json:"time_limit"`
	Questions    []TakingQuestion `json:"questions"`
}

// --- Attempts ---

type AttemptResponse struct {
	ID        uuid.UUID           `json:"id"`
	TestID    uuid.UUID           `json:"test_id"`
	EventID   uuid.UUID           `json:"event_id"`
	UserID    uuid.UUID           `json:"user_id"`
	Status    model.AttemptStatus `json:"status"`
	StartTime time.Time           `json:"start_time"`
	EndTime   *time.Time          `json:"end_time,omitempty"`
	Score     *int                `json:"score,omitempty"`
	// Resumed is true when an existing in_progress attempt was returned.
	Resumed bool `json:"resumed,omitempty"`
	// Deadline is set for time limited tests.
	Deadline *time.Time `json:"deadline,omitempty"`
}

type QuestionResultResponse struct {
	QuestionID   uuid.UUID          `json:"question_id"`
	Text         string             `json:"text"`
	QuestionType model.QuestionType `json:"question_type"`
	Order        int                `json:"order"`
	Points       int                `json:"points"`
	Answered     bool               `json:"answered"`
	Correct      bool               `json:"correct"`
	Earned       int                `json:"earned"`
	AnswerID     *uuid.UUID         `json:"answer_id,omitempty"`
	AnswerIDs    []uuid.UUID        `json:"answer_ids,omitempty"`
	TextAnswer   *string            `json:"text_answer,omitempty"`
	UserOrder    []uuid.UUID        `json:"user_order,omitempty"`
	// CorrectAnswerIDs lists the right options of choice questions.
	CorrectAnswerIDs []uuid.UUID `json:"correct_answer_ids,omitempty"`
	// ReferenceOrder is the right order of a sequence question.
	ReferenceOrder []uuid.UUID            `json:"reference_order,omitempty"`
	Options        []AnswerOptionResponse `json:"options,omitempty"`
}

type AttemptResultResponse struct {
	Attempt      AttemptResponse          `json:"attempt"`
	TestTitle    string                   `json:"test_title"`
	PassingScore int                      `json:"passing_score"`
	EarnedPoints int                      `json:"earned_points"`
	TotalPoints  int                      `json:"total_points"`
	Percentage   int                      `json:"percentage"`
	CorrectCount int                      `json:"correct_count"`
	TotalCount   int                      `json:"total_count"`
	Passed       bool                     `json:"passed"`
	Questions    []QuestionResultResponse `json:"questions"`
}
