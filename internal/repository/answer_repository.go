package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"gorm.io/gorm"
)

// AnswerRepository stores the answer options of questions.
type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	Save(ctx context.Context, answer *model.AnswerOption) error
	FindByQuestionID(ctx context.Context, questionID uuid.UUID) ([]model.AnswerOption, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

func (r *answerRepository) Save(ctx context.Context, answer *model.AnswerOption) error {
	if answer.ID == uuid.Nil {
		return r.db.WithContext(ctx).Create(answer).Error
	}
	return r.db.WithContext(ctx).Save(answer).Error
}

func (r *answerRepository) FindByQuestionID(ctx context.Context, questionID uuid.UUID) ([]model.AnswerOption, error) {
	var answers []model.AnswerOption
	err := r.db.WithContext(ctx).Where("question_id = ?", questionID).Order("order_index ASC").Find(&answers).Error
	return answers, err
}

func (r *answerRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.AnswerOption{}).Error
}
