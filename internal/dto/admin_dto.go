package dto

import "github.com/google/uuid"

// AnswerOptionSaveDTO is one option of a question in a save request.
// ID is set for options that already exist; omit it to add a new one.
type AnswerOptionSaveDTO struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	Text      string     `json:"text"`
	IsCorrect bool       `json:"is_correct"`
	Order     int        `json:"order" binding:"min=0"`
}

// QuestionSaveDTO is one question of a save request.
type QuestionSaveDTO struct {
	ID           *uuid.UUID            `json:"id,omitempty"`
	Text         string                `json:"text"`
	QuestionType string                `json:"question_type" binding:"required,question_type"`
	Order        int                   `json:"order" binding:"min=0"`
	Answers      []AnswerOptionSaveDTO `json:"answers" binding:"omitempty,dive"`
}

// TestSaveDTO creates or fully replaces a test definition. Question points are
// always recomputed so that they add up to 100.
type TestSaveDTO struct {
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	Type         string            `json:"type" binding:"required,oneof=entry final annual"`
	PassingScore int               `json:"passing_score" binding:"min=0,max=100"`
	TimeLimit    int               `json:"time_limit" binding:"min=0"`
	Status       string            `json:"status,omitempty" binding:"omitempty,oneof=draft active inactive"`
	EventTypeID  *uuid.UUID        `json:"event_type_id,omitempty"`
	Questions    []QuestionSaveDTO `json:"questions" binding:"omitempty,dive"`
}

type TestStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=draft active inactive"`
}
