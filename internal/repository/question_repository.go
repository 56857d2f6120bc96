package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	Save(ctx context.Context, question *model.Question) error
	FindByTestID(ctx context.Context, testID uuid.UUID) ([]model.Question, error)
	FindByIDForTest(ctx context.Context, testID, id uuid.UUID) (*model.Question, error)
	// DeleteWithAnswers removes the questions and their answer options.
	DeleteWithAnswers(ctx context.Context, ids []uuid.UUID) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) Save(ctx context.Context, question *model.Question) error {
	if question.ID == uuid.Nil {
		return r.db.WithContext(ctx).Omit("Answers").Create(question).Error
	}
	return r.db.WithContext(ctx).Omit("Answers").Save(question).Error
}

func (r *questionRepository) FindByTestID(ctx context.Context, testID uuid.UUID) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_answers.order_index ASC")
		}).
		Where("test_id = ?", testID).
		Order("order_index ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByIDForTest(ctx context.Context, testID, id uuid.UUID) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).
		Preload("Answers").
		Where("test_id = ?", testID).
		First(&question, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) DeleteWithAnswers(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	db := r.db.WithContext(ctx)
	if err := db.Where("question_id IN ?", ids).Delete(&model.AnswerOption{}).Error; err != nil {
		return err
	}
	return db.Where("id IN ?", ids).Delete(&model.Question{}).Error
}
