package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
	AttemptFailed     AttemptStatus = "failed"
)

// Terminal reports whether no transition may leave the status.
func (s AttemptStatus) Terminal() bool {
	return s == AttemptCompleted || s == AttemptFailed
}

// TestAttempt is one user's run through a test in the context of an event.
// At most one in_progress row may exist per (user, test, event).
type TestAttempt struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TestID    uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_attempt_open,where:status = 'in_progress'" json:"test_id"`
	EventID   uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_attempt_open" json:"event_id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_attempt_open" json:"user_id"`
	Status    AttemptStatus   `gorm:"not null;default:in_progress;index" json:"status"`
	StartTime time.Time       `gorm:"not null" json:"start_time"`
	EndTime   *time.Time      `json:"end_time,omitempty"`
	Score     *int            `json:"score,omitempty"`
	Answers   []AttemptAnswer `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (TestAttempt) TableName() string { return "user_test_attempts" }

func (a *TestAttempt) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// CanTransition encodes the attempt state machine:
// in_progress -> completed | failed, nothing leaves a terminal state.
func (a TestAttempt) CanTransition(to AttemptStatus) bool {
	if a.Status != AttemptInProgress {
		return false
	}
	return to == AttemptCompleted || to == AttemptFailed
}

// Deadline returns when the attempt runs out of time, or false for unlimited tests.
func (a TestAttempt) Deadline(timeLimit time.Duration) (time.Time, bool) {
	if timeLimit <= 0 {
		return time.Time{}, false
	}
	return a.StartTime.Add(timeLimit), true
}
