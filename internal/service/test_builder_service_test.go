package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"github.com/maxty9378/paneldoirp-sub002/internal/dto"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"github.com/maxty9378/paneldoirp-sub002/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestBuilderService_CreateNormalizesPoints(t *testing.T) {
	f := newFixture(t)

	resp, err := f.builder.CreateTest(context.Background(), uuid.New(), quizDTO("entry"))
	require.NoError(t, err)

	require.Len(t, resp.Questions, 3)
	points := []int{resp.Questions[0].Points, resp.Questions[1].Points, resp.Questions[2].Points}
	assert.Equal(t, []int{33, 33, 34}, points)
	assert.Equal(t, model.TestStatusActive, resp.Status)
	assert.NotNil(t, resp.CreatedBy)
}

func TestTestBuilderService_CreateRejectsInvalidWithoutSaving(t *testing.T) {
	f := newFixture(t)
	req := quizDTO("entry")
	req.Title = " "
	req.Questions[0].Answers[0].IsCorrect = true // two correct on single choice

	_, err := f.builder.CreateTest(context.Background(), uuid.New(), req)

	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 2)

	list, err := f.builder.ListTests(context.Background(), repository.TestFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTestBuilderService_RejectsSequenceWithoutTotalOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.builder.CreateTest(ctx, uuid.New(), quizDTO("entry"))
	require.NoError(t, err)

	req := quizDTO("entry")
	for i := range req.Questions[2].Answers {
		req.Questions[2].Answers[i].Order = 0
	}

	_, err = f.builder.CreateTest(ctx, uuid.New(), req)
	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "question 3: answer 2 order 0 is used twice")

	_, err = f.builder.SaveTest(ctx, created.ID, req)
	require.True(t, errors.As(err, &verr))

	stored, err := f.builder.GetTest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Questions[2].Answers[0].Order)
	assert.Equal(t, 3, stored.Questions[2].Answers[2].Order)
}

func TestTestBuilderService_SaveWithoutStatusKeepsStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.builder.CreateTest(ctx, uuid.New(), quizDTO("entry"))
	require.NoError(t, err)
	require.Equal(t, model.TestStatusActive, created.Status)

	req := quizDTO("entry")
	req.Status = ""
	req.Title = "Product knowledge, spring"
	saved, err := f.builder.SaveTest(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, model.TestStatusActive, saved.Status)
	assert.Equal(t, "Product knowledge, spring", saved.Title)

	req.Status = string(model.TestStatusInactive)
	saved, err = f.builder.SaveTest(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, model.TestStatusInactive, saved.Status)
}

func TestTestBuilderService_SaveKeepsIDsAndDiffs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.builder.CreateTest(ctx, uuid.New(), quizDTO("entry"))
	require.NoError(t, err)

	single := created.Questions[0]
	multi := created.Questions[1]
	keptOption := single.Answers[1]

	// edit the single choice text, drop its first option, drop the sequence
	// question and add a text question
	req := quizDTO("final")
	req.Questions = []dto.QuestionSaveDTO{
		{ID: &single.ID, Text: "Pick the flagship (edited)", QuestionType: "single_choice", Order: 1, Answers: []dto.AnswerOptionSaveDTO{
			{ID: &keptOption.ID, Text: "B", Order: 1, IsCorrect: true},
			{Text: "C", Order: 2},
		}},
		{ID: &multi.ID, Text: multi.Text, QuestionType: "multiple_choice", Order: 2, Answers: []dto.AnswerOptionSaveDTO{
			{ID: &multi.Answers[0].ID, Text: "X", Order: 1, IsCorrect: true},
		}},
		{Text: "Describe the policy", QuestionType: "text", Order: 3},
	}

	saved, err := f.builder.SaveTest(ctx, created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, model.TestTypeFinal, saved.Type)
	assert.Equal(t, created.CreatedBy, saved.CreatedBy)
	require.Len(t, saved.Questions, 3)
	assert.Equal(t, single.ID, saved.Questions[0].ID)
	assert.Equal(t, "Pick the flagship (edited)", saved.Questions[0].Text)
	require.Len(t, saved.Questions[0].Answers, 2)
	assert.Equal(t, keptOption.ID, saved.Questions[0].Answers[0].ID)
	assert.NotEqual(t, single.Answers[0].ID, saved.Questions[0].Answers[1].ID)
	assert.Equal(t, multi.ID, saved.Questions[1].ID)
	assert.Len(t, saved.Questions[1].Answers, 1)
	assert.Equal(t, model.QuestionText, saved.Questions[2].QuestionType)
	assert.Empty(t, saved.Questions[2].Answers)

	var optionCount int64
	require.NoError(t, f.db.Model(&model.AnswerOption{}).Count(&optionCount).Error)
	assert.EqualValues(t, 3, optionCount, "removed options and the sequence question's options are gone")
}

func TestTestBuilderService_SaveIgnoresForeignIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	other, err := f.builder.CreateTest(ctx, uuid.New(), quizDTO("entry"))
	require.NoError(t, err)
	target, err := f.builder.CreateTest(ctx, uuid.New(), quizDTO("entry"))
	require.NoError(t, err)

	req := quizDTO("entry")
	req.Questions = req.Questions[:1]
	req.Questions[0].ID = &other.Questions[0].ID

	saved, err := f.builder.SaveTest(ctx, target.ID, req)
	require.NoError(t, err)
	require.Len(t, saved.Questions, 1)
	assert.NotEqual(t, other.Questions[0].ID, saved.Questions[0].ID)
	assert.Equal(t, 100, saved.Questions[0].Points)

	untouched, err := f.builder.GetTest(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, untouched.Questions, 3)
}

func TestTestBuilderService_SaveMissingTest(t *testing.T) {
	f := newFixture(t)
	_, err := f.builder.SaveTest(context.Background(), uuid.New(), quizDTO("entry"))
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestTestBuilderService_SetStatusValidatesBeforeActivating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := quizDTO("entry")
	req.Status = string(model.TestStatusDraft)
	created, err := f.builder.CreateTest(ctx, uuid.New(), req)
	require.NoError(t, err)

	require.NoError(t, f.builder.SetStatus(ctx, created.ID, model.TestStatusActive))
	got, err := f.builder.GetTest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TestStatusActive, got.Status)

	require.NoError(t, f.builder.SetStatus(ctx, created.ID, model.TestStatusInactive))

	var verr *apperror.ValidationError
	assert.True(t, errors.As(f.builder.SetStatus(ctx, created.ID, "archived"), &verr))
	assert.True(t, errors.Is(f.builder.SetStatus(ctx, uuid.New(), model.TestStatusInactive), apperror.ErrNotFound))
}

func TestTestBuilderService_ListAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.builder.CreateTest(ctx, uuid.New(), quizDTO("annual"))
	require.NoError(t, err)

	list, err := f.builder.ListTests(ctx, repository.TestFilter{Type: model.TestTypeAnnual})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].QuestionCount)

	require.NoError(t, f.builder.DeleteTest(ctx, created.ID))
	_, err = f.builder.GetTest(ctx, created.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.True(t, errors.Is(f.builder.DeleteTest(ctx, created.ID), apperror.ErrNotFound))
}

func TestTestBuilderService_ValidateTest(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.builder.ValidateTest(quizDTO("entry")))

	req := quizDTO("entry")
	req.Questions = nil
	var verr *apperror.ValidationError
	require.True(t, errors.As(f.builder.ValidateTest(req), &verr))
	assert.Contains(t, verr.Problems, "test must have at least one question")
}
