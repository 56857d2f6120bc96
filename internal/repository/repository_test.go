package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/database"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedTest(t *testing.T, db *gorm.DB) *model.Test {
	t.Helper()
	test := &model.Test{
		Title:  "Safety basics",
		Type:   model.TestTypeEntry,
		Status: model.TestStatusActive,
		Questions: []model.Question{
			{Text: "Q2", QuestionType: model.QuestionSingleChoice, Order: 2, Points: 50, Answers: []model.AnswerOption{
				{Text: "b", Order: 2},
				{Text: "a", Order: 1, IsCorrect: true},
			}},
			{Text: "Q1", QuestionType: model.QuestionText, Order: 1, Points: 50},
		},
	}
	require.NoError(t, NewTestRepository(db).Create(context.Background(), test))
	return test
}

func TestTestRepository_FindByIDWithQuestionsOrders(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewTestRepository(db)
	seeded := seedTest(t, db)

	got, err := repo.FindByIDWithQuestions(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, "Q1", got.Questions[0].Text)
	assert.Equal(t, "Q2", got.Questions[1].Text)
	require.Len(t, got.Questions[1].Answers, 2)
	assert.Equal(t, "a", got.Questions[1].Answers[0].Text)
	assert.True(t, got.Questions[1].Answers[0].IsCorrect)
}

func TestTestRepository_FindAllWithQuestionCount(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewTestRepository(db)
	seedTest(t, db)
	require.NoError(t, repo.Create(context.Background(), &model.Test{Title: "Draft", Type: model.TestTypeFinal, Status: model.TestStatusDraft}))

	all, err := repo.FindAllWithQuestionCount(context.Background(), TestFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := repo.FindAllWithQuestionCount(context.Background(), TestFilter{Status: model.TestStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 2, active[0].QuestionCount)
}

func TestTestRepository_DeleteCascades(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewTestRepository(db)
	seeded := seedTest(t, db)

	require.NoError(t, repo.Delete(context.Background(), seeded.ID))

	var questions, answers int64
	require.NoError(t, db.Model(&model.Question{}).Count(&questions).Error)
	require.NoError(t, db.Model(&model.AnswerOption{}).Count(&answers).Error)
	assert.Zero(t, questions)
	assert.Zero(t, answers)

	err := repo.Delete(context.Background(), seeded.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestTestRepository_UpdateStatusMissing(t *testing.T) {
	db := database.OpenTest(t)
	err := NewTestRepository(db).UpdateStatus(context.Background(), uuid.New(), model.TestStatusInactive)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestQuestionRepository_DeleteWithAnswers(t *testing.T) {
	db := database.OpenTest(t)
	seeded := seedTest(t, db)
	repo := NewQuestionRepository(db)

	var choice model.Question
	for _, q := range seeded.Questions {
		if q.QuestionType == model.QuestionSingleChoice {
			choice = q
		}
	}
	require.NoError(t, repo.DeleteWithAnswers(context.Background(), []uuid.UUID{choice.ID}))

	left, err := repo.FindByTestID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, model.QuestionText, left[0].QuestionType)

	opts, err := NewAnswerRepository(db).FindByQuestionID(context.Background(), choice.ID)
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestTestAttemptRepository_CreateIfAbsent(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewTestAttemptRepository(db)
	ctx := context.Background()
	userID, testID, eventID := uuid.New(), uuid.New(), uuid.New()

	first := &model.TestAttempt{UserID: userID, TestID: testID, EventID: eventID, Status: model.AttemptInProgress, StartTime: time.Now().UTC()}
	created, err := repo.CreateIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := &model.TestAttempt{UserID: userID, TestID: testID, EventID: eventID, Status: model.AttemptInProgress, StartTime: time.Now().UTC()}
	created, err = repo.CreateIfAbsent(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)

	open, err := repo.FindOpen(ctx, userID, testID, eventID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, open.ID)

	// once the first attempt is terminal a new one may start
	score := 40
	finished, err := repo.Finish(ctx, first.ID, model.AttemptCompleted, &score, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, finished)

	third := &model.TestAttempt{UserID: userID, TestID: testID, EventID: eventID, Status: model.AttemptInProgress, StartTime: time.Now().UTC().Add(time.Second)}
	created, err = repo.CreateIfAbsent(ctx, third)
	require.NoError(t, err)
	assert.True(t, created)

	latest, err := repo.FindLatest(ctx, userID, testID, eventID)
	require.NoError(t, err)
	assert.Equal(t, third.ID, latest.ID)
}

func TestTestAttemptRepository_FinishOnlyFromInProgress(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewTestAttemptRepository(db)
	ctx := context.Background()

	attempt := &model.TestAttempt{UserID: uuid.New(), TestID: uuid.New(), EventID: uuid.New(), Status: model.AttemptInProgress, StartTime: time.Now().UTC()}
	_, err := repo.CreateIfAbsent(ctx, attempt)
	require.NoError(t, err)

	ok, err := repo.Finish(ctx, attempt.ID, model.AttemptFailed, nil, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Finish(ctx, attempt.ID, model.AttemptCompleted, nil, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.FindByID(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AttemptFailed, got.Status)
	assert.NotNil(t, got.EndTime)
	assert.Nil(t, got.Score)
}

func TestTestAttemptRepository_FindInProgressWithTimeLimit(t *testing.T) {
	db := database.OpenTest(t)
	ctx := context.Background()
	limited := &model.Test{Title: "timed", Type: model.TestTypeFinal, Status: model.TestStatusActive, TimeLimit: 10}
	unlimited := &model.Test{Title: "untimed", Type: model.TestTypeFinal, Status: model.TestStatusActive}
	tests := NewTestRepository(db)
	require.NoError(t, tests.Create(ctx, limited))
	require.NoError(t, tests.Create(ctx, unlimited))

	repo := NewTestAttemptRepository(db)
	for _, testID := range []uuid.UUID{limited.ID, unlimited.ID} {
		_, err := repo.CreateIfAbsent(ctx, &model.TestAttempt{UserID: uuid.New(), TestID: testID, EventID: uuid.New(), Status: model.AttemptInProgress, StartTime: time.Now().UTC()})
		require.NoError(t, err)
	}

	rows, err := repo.FindInProgressWithTimeLimit(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, limited.ID, rows[0].TestID)
	assert.Equal(t, 10, rows[0].TimeLimit)
}

func TestAttemptAnswerRepository_UpsertOverwrites(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewAttemptAnswerRepository(db)
	ctx := context.Background()
	attemptID, questionID := uuid.New(), uuid.New()
	first, second := uuid.New(), uuid.New()

	require.NoError(t, repo.Upsert(ctx, []model.AttemptAnswer{{AttemptID: attemptID, QuestionID: questionID, AnswerID: &first}}))
	require.NoError(t, repo.Upsert(ctx, []model.AttemptAnswer{{
		AttemptID: attemptID, QuestionID: questionID, AnswerID: &second,
		AnswerIDs: datatypes.NewJSONSlice([]uuid.UUID{second}), IsCorrect: true,
	}}))

	answers, err := repo.FindByAttemptID(ctx, attemptID)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	require.NotNil(t, answers[0].AnswerID)
	assert.Equal(t, second, *answers[0].AnswerID)
	assert.Equal(t, []uuid.UUID{second}, []uuid.UUID(answers[0].AnswerIDs))
	assert.True(t, answers[0].IsCorrect)

	require.NoError(t, repo.SetCorrect(ctx, attemptID, questionID, false))
	assert.True(t, errors.Is(repo.SetCorrect(ctx, attemptID, uuid.New(), true), gorm.ErrRecordNotFound))
}

func TestEventRepository_ScopeAndStats(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewEventRepository(db)
	ctx := context.Background()
	creator, participant := uuid.New(), uuid.New()
	eventType := uuid.New()

	own := &model.Event{Title: "own", StartDate: time.Now().UTC(), CreatedBy: creator, EventTypeID: &eventType}
	joined := &model.Event{Title: "joined", StartDate: time.Now().UTC().Add(-time.Hour), CreatedBy: uuid.New()}
	other := &model.Event{Title: "other", StartDate: time.Now().UTC().Add(-2 * time.Hour), CreatedBy: uuid.New()}
	for _, e := range []*model.Event{own, joined, other} {
		require.NoError(t, repo.Create(ctx, e))
	}
	require.NoError(t, repo.AddParticipant(ctx, joined.ID, participant))
	require.NoError(t, repo.AddParticipant(ctx, joined.ID, participant))
	require.NoError(t, repo.AddParticipant(ctx, joined.ID, creator))

	all, err := repo.FindAll(ctx, EventScope{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.FindAll(ctx, EventScope{ParticipantID: &participant})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, joined.ID, mine[0].ID)

	created, err := repo.FindAll(ctx, EventScope{ParticipantID: &creator, OrCreatedBy: true})
	require.NoError(t, err)
	assert.Len(t, created, 2)

	ok, err := repo.IsParticipant(ctx, joined.ID, participant)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, NewTestRepository(db).Create(ctx, &model.Test{Title: "typed", Type: model.TestTypeEntry, Status: model.TestStatusActive, EventTypeID: &eventType}))
	attempts := NewTestAttemptRepository(db)
	for _, score := range []int{60, 80} {
		a := &model.TestAttempt{UserID: uuid.New(), TestID: uuid.New(), EventID: joined.ID, Status: model.AttemptInProgress, StartTime: time.Now().UTC()}
		_, err := attempts.CreateIfAbsent(ctx, a)
		require.NoError(t, err)
		s := score
		_, err = attempts.Finish(ctx, a.ID, model.AttemptCompleted, &s, time.Now().UTC())
		require.NoError(t, err)
	}

	stats, err := repo.Stats(ctx, all)
	require.NoError(t, err)
	assert.Equal(t, 2, stats[joined.ID].ParticipantCount)
	assert.Equal(t, 2, stats[joined.ID].CompletedAttempts)
	require.NotNil(t, stats[joined.ID].AverageScore)
	assert.InDelta(t, 70.0, *stats[joined.ID].AverageScore, 0.001)
	assert.Equal(t, 1, stats[own.ID].TestCount)
	assert.Nil(t, stats[other.ID].AverageScore)
}
