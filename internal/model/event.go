package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string

const (
	EventPlanned   EventStatus = "planned"
	EventActive    EventStatus = "active"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// Event is a scheduled training activity. Tests are taken in the context of an event.
type Event struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string             `gorm:"not null" json:"title"`
	Description  string             `gorm:"type:text" json:"description,omitempty"`
	EventTypeID  *uuid.UUID         `gorm:"type:uuid;index" json:"event_type_id,omitempty"`
	StartDate    time.Time          `gorm:"not null;index" json:"start_date"`
	EndDate      *time.Time         `json:"end_date,omitempty"`
	Status       EventStatus        `gorm:"not null;default:planned" json:"status"`
	CreatedBy    uuid.UUID          `gorm:"type:uuid;not null;index" json:"created_by"`
	Participants []EventParticipant `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (Event) TableName() string { return "events" }

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	ensureID(&e.ID)
	return nil
}

// ConcludedOn is the end date, or the start date for single-day events.
func (e Event) ConcludedOn() time.Time {
	if e.EndDate != nil && !e.EndDate.IsZero() {
		return *e.EndDate
	}
	return e.StartDate
}

type EventParticipant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_user" json:"event_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_user;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (EventParticipant) TableName() string { return "event_participants" }

func (p *EventParticipant) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// EventStats aggregates attempt activity of an event.
type EventStats struct {
	ParticipantCount  int      `json:"participant_count"`
	TestCount         int      `json:"test_count"`
	CompletedAttempts int      `json:"completed_attempts"`
	AverageScore      *float64 `json:"average_score,omitempty"`
}

// EventWithStats is the read-only listing shape shared by every consumer.
// Build it with NewEventWithStats; Stats is nil when the viewer may not see statistics.
type EventWithStats struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	EventTypeID *uuid.UUID  `json:"event_type_id,omitempty"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	Status      EventStatus `json:"status"`
	CreatedBy   uuid.UUID   `json:"created_by"`
	Stats       *EventStats `json:"stats,omitempty"`
}

func NewEventWithStats(e Event, stats *EventStats) EventWithStats {
	out := EventWithStats{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		EventTypeID: e.EventTypeID,
		StartDate:   e.StartDate,
		Status:      e.Status,
		CreatedBy:   e.CreatedBy,
	}
	if e.EndDate != nil {
		end := *e.EndDate
		out.EndDate = &end
	}
	if stats != nil {
		s := *stats
		if stats.AverageScore != nil {
			avg := *stats.AverageScore
			s.AverageScore = &avg
		}
		out.Stats = &s
	}
	return out
}
