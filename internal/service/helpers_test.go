package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/config"
	"github.com/maxty9378/paneldoirp-sub002/internal/cache"
	"github.com/maxty9378/paneldoirp-sub002/internal/database"
	"github.com/maxty9378/paneldoirp-sub002/internal/dto"
	"github.com/maxty9378/paneldoirp-sub002/internal/metrics"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"github.com/maxty9378/paneldoirp-sub002/internal/repository"
	"github.com/maxty9378/paneldoirp-sub002/internal/scoring"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeClock is a settable Clock.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	db       *gorm.DB
	clock    *fakeClock
	metrics  *metrics.Metrics
	builder  TestBuilderService
	attempts AttemptService
	events   EventService
	reaper   *AttemptReaper
	repos    struct {
		tests    repository.TestRepository
		attempts repository.TestAttemptRepository
		answers  repository.AttemptAnswerRepository
		events   repository.EventRepository
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		db:      database.OpenTest(t),
		clock:   &fakeClock{t: time.Date(2024, time.September, 10, 9, 0, 0, 0, time.UTC)},
		metrics: metrics.New(),
	}
	f.repos.tests = repository.NewTestRepository(f.db)
	f.repos.attempts = repository.NewTestAttemptRepository(f.db)
	f.repos.answers = repository.NewAttemptAnswerRepository(f.db)
	f.repos.events = repository.NewEventRepository(f.db)

	cfg := &config.Config{Reaper: config.Reaper{Schedule: "@every 1m", Grace: 5 * time.Minute}}

	f.builder = NewTestBuilderService(f.db, f.repos.tests, repository.NewQuestionRepository(f.db), repository.NewAnswerRepository(f.db))
	f.attempts = NewAttemptService(f.db, f.repos.tests, f.repos.attempts, f.repos.answers, f.repos.events,
		scoring.NewScorer(scoring.ModeExactSet), f.metrics, f.clock.Now, cfg)
	f.events = NewEventService(f.repos.events, cache.NewEventCache(time.Minute), f.metrics)

	f.reaper = NewAttemptReaper(cfg, f.repos.attempts, f.metrics, f.clock.Now)
	return f
}

// quizDTO is a three question test: single choice, multiple choice, sequence.
func quizDTO(testType string) dto.TestSaveDTO {
	return dto.TestSaveDTO{
		Title:        "Product knowledge",
		Type:         testType,
		PassingScore: 60,
		Status:       string(model.TestStatusActive),
		Questions: []dto.QuestionSaveDTO{
			{Text: "Pick the flagship", QuestionType: "single_choice", Order: 1, Answers: []dto.AnswerOptionSaveDTO{
				{Text: "A", Order: 1}, {Text: "B", Order: 2, IsCorrect: true},
			}},
			{Text: "Pick all seasonal", QuestionType: "multiple_choice", Order: 2, Answers: []dto.AnswerOptionSaveDTO{
				{Text: "X", Order: 1, IsCorrect: true}, {Text: "Y", Order: 2}, {Text: "Z", Order: 3, IsCorrect: true},
			}},
			{Text: "Order the steps", QuestionType: "sequence", Order: 3, Answers: []dto.AnswerOptionSaveDTO{
				{Text: "first", Order: 1}, {Text: "second", Order: 2}, {Text: "third", Order: 3},
			}},
		},
	}
}

func (f *fixture) createTest(t *testing.T, req dto.TestSaveDTO) *model.Test {
	t.Helper()
	created, err := f.builder.CreateTest(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	test, err := f.repos.tests.FindByIDWithQuestions(context.Background(), created.ID)
	require.NoError(t, err)
	return test
}

func (f *fixture) createEvent(t *testing.T, start time.Time, end *time.Time) *model.Event {
	t.Helper()
	event := &model.Event{Title: "Regional training", StartDate: start, EndDate: end, Status: model.EventCompleted, CreatedBy: uuid.New()}
	require.NoError(t, f.repos.events.Create(context.Background(), event))
	return event
}

// correctAnswers answers every question of the quiz correctly.
func correctAnswers(test *model.Test) []dto.AnswerSubmission {
	var out []dto.AnswerSubmission
	for _, q := range test.Questions {
		sub := dto.AnswerSubmission{QuestionID: q.ID}
		switch q.QuestionType {
		case model.QuestionSingleChoice:
			id := q.CorrectAnswerIDs()[0]
			sub.AnswerID = &id
		case model.QuestionMultipleChoice:
			sub.AnswerIDs = q.CorrectAnswerIDs()
		case model.QuestionSequence:
			sub.UserOrder = scoring.ReferenceOrder(q)
		}
		out = append(out, sub)
	}
	return out
}
