package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptFilter struct {
	TestID  *uuid.UUID
	EventID *uuid.UUID
	UserID  *uuid.UUID
	Status  model.AttemptStatus
}

// ExpiredCandidate is an in_progress attempt of a time limited test.
type ExpiredCandidate struct {
	ID        uuid.UUID
	TestID    uuid.UUID
	UserID    uuid.UUID
	StartTime time.Time
	// TimeLimit is the test's limit in minutes.
	TimeLimit int
}

// Deadline is when the attempt ran out of time.
func (c ExpiredCandidate) Deadline() time.Time {
	return c.StartTime.Add(time.Duration(c.TimeLimit) * time.Minute)
}

type TestAttemptRepository interface {
	WithTx(tx *gorm.DB) TestAttemptRepository
	// CreateIfAbsent inserts the attempt unless an in_progress one already exists
	// for the same user, test and event. created is false when the insert was skipped.
	CreateIfAbsent(ctx context.Context, attempt *model.TestAttempt) (created bool, err error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.TestAttempt, error)
	FindByIDWithAnswers(ctx context.Context, id uuid.UUID) (*model.TestAttempt, error)
	FindLatest(ctx context.Context, userID, testID, eventID uuid.UUID) (*model.TestAttempt, error)
	FindOpen(ctx context.Context, userID, testID, eventID uuid.UUID) (*model.TestAttempt, error)
	FindAll(ctx context.Context, filter AttemptFilter) ([]model.TestAttempt, error)
	FindInProgressWithTimeLimit(ctx context.Context) ([]ExpiredCandidate, error)
	// Finish moves an in_progress attempt to a terminal status. It reports false
	// when the attempt was no longer in_progress.
	Finish(ctx context.Context, id uuid.UUID, status model.AttemptStatus, score *int, endTime time.Time) (bool, error)
	UpdateScore(ctx context.Context, id uuid.UUID, score int) error
}

type testAttemptRepository struct {
	db *gorm.DB
}

func NewTestAttemptRepository(db *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: db}
}

func (r *testAttemptRepository) WithTx(tx *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: tx}
}

func (r *testAttemptRepository) CreateIfAbsent(ctx context.Context, attempt *model.TestAttempt) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "test_id"}, {Name: "event_id"}, {Name: "user_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "status = 'in_progress'"}}},
			DoNothing:   true,
		}).
		Create(attempt)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *testAttemptRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	if err := r.db.WithContext(ctx).First(&attempt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindByIDWithAnswers(ctx context.Context, id uuid.UUID) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	if err := r.db.WithContext(ctx).Preload("Answers").First(&attempt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindLatest(ctx context.Context, userID, testID, eventID uuid.UUID) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND test_id = ? AND event_id = ?", userID, testID, eventID).
		Order("start_time DESC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindOpen(ctx context.Context, userID, testID, eventID uuid.UUID) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND test_id = ? AND event_id = ? AND status = ?", userID, testID, eventID, model.AttemptInProgress).
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindAll(ctx context.Context, filter AttemptFilter) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	query := r.db.WithContext(ctx).Model(&model.TestAttempt{})
	if filter.TestID != nil {
		query = query.Where("test_id = ?", *filter.TestID)
	}
	if filter.EventID != nil {
		query = query.Where("event_id = ?", *filter.EventID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	err := query.Order("start_time DESC").Find(&attempts).Error
	return attempts, err
}

func (r *testAttemptRepository) FindInProgressWithTimeLimit(ctx context.Context) ([]ExpiredCandidate, error) {
	var rows []ExpiredCandidate
	err := r.db.WithContext(ctx).
		Table("user_test_attempts").
		Select("user_test_attempts.id, user_test_attempts.test_id, user_test_attempts.user_id, user_test_attempts.start_time, tests.time_limit").
		Joins("JOIN tests ON tests.id = user_test_attempts.test_id").
		Where("user_test_attempts.status = ? AND tests.time_limit > 0", model.AttemptInProgress).
		Scan(&rows).Error
	return rows, err
}

func (r *testAttemptRepository) Finish(ctx context.Context, id uuid.UUID, status model.AttemptStatus, score *int, endTime time.Time) (bool, error) {
	updates := map[string]interface{}{
		"status":   status,
		"end_time": endTime,
	}
	if score != nil {
		updates["score"] = *score
	}
	res := r.db.WithContext(ctx).Model(&model.TestAttempt{}).
		Where("id = ? AND status = ?", id, model.AttemptInProgress).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *testAttemptRepository) UpdateScore(ctx context.Context, id uuid.UUID, score int) error {
	return r.db.WithContext(ctx).Model(&model.TestAttempt{}).Where("id = ?", id).Update("score", score).Error
}
