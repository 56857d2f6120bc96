package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestType string

const (
	TestTypeEntry  TestType = "entry"
	TestTypeFinal  TestType = "final"
	TestTypeAnnual TestType = "annual"
)

func (t TestType) Valid() bool {
	switch t {
	case TestTypeEntry, TestTypeFinal, TestTypeAnnual:
		return true
	}
	return false
}

type TestStatus string

const (
	TestStatusDraft    TestStatus = "draft"
	TestStatusActive   TestStatus = "active"
	TestStatusInactive TestStatus = "inactive"
)

func (s TestStatus) Valid() bool {
	switch s {
	case TestStatusDraft, TestStatusActive, TestStatusInactive:
		return true
	}
	return false
}

// Test is an authored quiz template: ordered questions plus scoring rules.
type Test struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	Type         TestType   `gorm:"not null;default:entry;index" json:"type"`
	PassingScore int        `gorm:"not null;default:0" json:"passing_score"` // 0 means no threshold
	TimeLimit    int        `gorm:"not null;default:0" json:"time_limit"`    // minutes, 0 means unlimited
	Status       TestStatus `gorm:"not null;default:draft;index" json:"status"`
	EventTypeID  *uuid.UUID `gorm:"type:uuid;index" json:"event_type_id,omitempty"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	Questions    []Question `gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Test) TableName() string { return "tests" }

func (t *Test) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// TimeLimitDuration returns zero for unlimited tests.
func (t Test) TimeLimitDuration() time.Duration {
	return time.Duration(t.TimeLimit) * time.Minute
}
