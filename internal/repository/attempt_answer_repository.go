package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptAnswerRepository interface {
	WithTx(tx *gorm.DB) AttemptAnswerRepository
	// Upsert keeps one row per (attempt, question); a resubmission overwrites it.
	Upsert(ctx context.Context, answers []model.AttemptAnswer) error
	FindByAttemptID(ctx context.Context, attemptID uuid.UUID) ([]model.AttemptAnswer, error)
	SetCorrect(ctx context.Context, attemptID, questionID uuid.UUID, correct bool) error
}

type attemptAnswerRepository struct {
	db *gorm.DB
}

func NewAttemptAnswerRepository(db *gorm.DB) AttemptAnswerRepository {
	return &attemptAnswerRepository{db: db}
}

func (r *attemptAnswerRepository) WithTx(tx *gorm.DB) AttemptAnswerRepository {
	return &attemptAnswerRepository{db: tx}
}

func (r *attemptAnswerRepository) Upsert(ctx context.Context, answers []model.AttemptAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "attempt_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"answer_id", "answer_ids", "text_answer", "user_order", "is_correct", "updated_at",
			}),
		}).
		Create(&answers).Error
}

func (r *attemptAnswerRepository) FindByAttemptID(ctx context.Context, attemptID uuid.UUID) ([]model.AttemptAnswer, error) {
	var answers []model.AttemptAnswer
	err := r.db.WithContext(ctx).Where("attempt_id = ?", attemptID).Order("created_at ASC").Find(&answers).Error
	return answers, err
}

func (r *attemptAnswerRepository) SetCorrect(ctx context.Context, attemptID, questionID uuid.UUID, correct bool) error {
	res := r.db.WithContext(ctx).Model(&model.AttemptAnswer{}).
		Where("attempt_id = ? AND question_id = ?", attemptID, questionID).
		Update("is_correct", correct)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
