package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventScope narrows an event listing. The zero value lists everything.
type EventScope struct {
	// ParticipantID keeps events the user participates in.
	ParticipantID *uuid.UUID
	// OrCreatedBy additionally keeps events the participant created.
	OrCreatedBy bool
}

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	FindAll(ctx context.Context, scope EventScope) ([]model.Event, error)
	IsParticipant(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	// AddParticipant is idempotent.
	AddParticipant(ctx context.Context, eventID, userID uuid.UUID) error
	Stats(ctx context.Context, events []model.Event) (map[uuid.UUID]model.EventStats, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, scope EventScope) ([]model.Event, error) {
	var events []model.Event
	query := r.db.WithContext(ctx).Model(&model.Event{})
	if scope.ParticipantID != nil {
		participating := r.db.Model(&model.EventParticipant{}).Select("event_id").Where("user_id = ?", *scope.ParticipantID)
		if scope.OrCreatedBy {
			query = query.Where("id IN (?) OR created_by = ?", participating, *scope.ParticipantID)
		} else {
			query = query.Where("id IN (?)", participating)
		}
	}
	err := query.Order("start_date DESC").Find(&events).Error
	return events, err
}

func (r *eventRepository) IsParticipant(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.EventParticipant{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *eventRepository) AddParticipant(ctx context.Context, eventID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&model.EventParticipant{EventID: eventID, UserID: userID}).Error
}

func (r *eventRepository) Stats(ctx context.Context, events []model.Event) (map[uuid.UUID]model.EventStats, error) {
	out := make(map[uuid.UUID]model.EventStats, len(events))
	if len(events) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, 0, len(events))
	var typeIDs []uuid.UUID
	for _, e := range events {
		ids = append(ids, e.ID)
		out[e.ID] = model.EventStats{}
		if e.EventTypeID != nil {
			typeIDs = append(typeIDs, *e.EventTypeID)
		}
	}
	db := r.db.WithContext(ctx)

	var participants []struct {
		EventID uuid.UUID
		Count   int
	}
	err := db.Model(&model.EventParticipant{}).
		Select("event_id, COUNT(*) AS count").
		Where("event_id IN ?", ids).
		Group("event_id").
		Scan(&participants).Error
	if err != nil {
		return nil, err
	}
	for _, row := range participants {
		s := out[row.EventID]
		s.ParticipantCount = row.Count
		out[row.EventID] = s
	}

	var completed []struct {
		EventID      uuid.UUID
		Count        int
		AverageScore *float64
	}
	err = db.Model(&model.TestAttempt{}).
		Select("event_id, COUNT(*) AS count, AVG(score) AS average_score").
		Where("event_id IN ? AND status = ?", ids, model.AttemptCompleted).
		Group("event_id").
		Scan(&completed).Error
	if err != nil {
		return nil, err
	}
	for _, row := range completed {
		s := out[row.EventID]
		s.CompletedAttempts = row.Count
		s.AverageScore = row.AverageScore
		out[row.EventID] = s
	}

	testCounts, err := NewTestRepository(r.db).CountActiveByEventType(ctx, typeIDs)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.EventTypeID == nil {
			continue
		}
		s := out[e.ID]
		s.TestCount = testCounts[*e.EventTypeID]
		out[e.ID] = s
	}
	return out, nil
}
