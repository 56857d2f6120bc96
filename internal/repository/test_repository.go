package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"gorm.io/gorm"
)

type TestFilter struct {
	Status      model.TestStatus
	Type        model.TestType
	EventTypeID *uuid.UUID
}

type TestWithQuestionCount struct {
	Test          model.Test
	QuestionCount int
}

type TestRepository interface {
	WithTx(tx *gorm.DB) TestRepository
	Create(ctx context.Context, test *model.Test) error
	Save(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Test, error)
	FindByIDWithQuestions(ctx context.Context, id uuid.UUID) (*model.Test, error)
	FindAllWithQuestionCount(ctx context.Context, filter TestFilter) ([]TestWithQuestionCount, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TestStatus) error
	CountActiveByEventType(ctx context.Context, eventTypeIDs []uuid.UUID) (map[uuid.UUID]int, error)
	// Delete removes the test with its questions and answer options.
	Delete(ctx context.Context, id uuid.UUID) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) WithTx(tx *gorm.DB) TestRepository {
	return &testRepository{db: tx}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	// GORM creates test.Questions and their Answers in the same statement batch.
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) Save(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Omit("Questions").Save(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithQuestions(ctx context.Context, id uuid.UUID) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_questions.order_index ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_answers.order_index ASC")
		}).
		First(&test, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAllWithQuestionCount(ctx context.Context, filter TestFilter) ([]TestWithQuestionCount, error) {
	var tests []model.Test
	query := r.db.WithContext(ctx).Model(&model.Test{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.EventTypeID != nil {
		query = query.Where("event_type_id = ?", *filter.EventTypeID)
	}
	if err := query.Order("created_at DESC").Find(&tests).Error; err != nil {
		return nil, err
	}
	if len(tests) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(tests))
	for i, t := range tests {
		ids[i] = t.ID
	}
	var counts []struct {
		TestID uuid.UUID
		Count  int
	}
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Select("test_id, COUNT(*) AS count").
		Where("test_id IN ?", ids).
		Group("test_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	byTest := make(map[uuid.UUID]int, len(counts))
	for _, c := range counts {
		byTest[c.TestID] = c.Count
	}

	results := make([]TestWithQuestionCount, len(tests))
	for i, t := range tests {
		results[i] = TestWithQuestionCount{Test: t, QuestionCount: byTest[t.ID]}
	}
	return results, nil
}

func (r *testRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TestStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *testRepository) CountActiveByEventType(ctx context.Context, eventTypeIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(eventTypeIDs))
	if len(eventTypeIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		EventTypeID uuid.UUID
		Count       int
	}
	err := r.db.WithContext(ctx).Model(&model.Test{}).
		Select("event_type_id, COUNT(*) AS count").
		Where("event_type_id IN ? AND status = ?", eventTypeIDs, model.TestStatusActive).
		Group("event_type_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.EventTypeID] = row.Count
	}
	return out, nil
}

func (r *testRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&model.Question{}).Select("id").Where("test_id = ?", id)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.AnswerOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Test{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
