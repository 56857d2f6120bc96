package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/maxty9378/paneldoirp-sub002/config"
	"github.com/maxty9378/paneldoirp-sub002/internal/access"
	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"github.com/maxty9378/paneldoirp-sub002/internal/dto"
	"github.com/maxty9378/paneldoirp-sub002/internal/metrics"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"github.com/maxty9378/paneldoirp-sub002/internal/repository"
	"github.com/maxty9378/paneldoirp-sub002/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttemptService interface {
	GetTestForTaking(ctx context.Context, testID uuid.UUID) (*dto.TakingTestResponse, error)
	StartAttempt(ctx context.Context, userID, testID, eventID uuid.UUID) (*dto.AttemptResponse, error)
	SubmitAnswers(ctx context.Context, attemptID, userID uuid.UUID, req dto.SubmitAnswersRequest) (*dto.AttemptResultResponse, error)
	AbandonAttempt(ctx context.Context, attemptID, userID uuid.UUID) (*dto.AttemptResponse, error)
	LoadResults(ctx context.Context, attemptID, viewerID uuid.UUID, caps access.Capabilities) (*dto.AttemptResultResponse, error)
	ListAttempts(ctx context.Context, filter repository.AttemptFilter) ([]dto.AttemptResponse, error)
	GradeTextAnswer(ctx context.Context, attemptID, questionID uuid.UUID, isCorrect bool) (*dto.AttemptResultResponse, error)
}

type attemptService struct {
	db          *gorm.DB
	testRepo    repository.TestRepository
	attemptRepo repository.TestAttemptRepository
	answerRepo  repository.AttemptAnswerRepository
	eventRepo   repository.EventRepository
	scorer      scoring.Scorer
	metrics     *metrics.Metrics
	now         Clock
	grace       time.Duration
	shuffle     func(n int, swap func(i, j int))
}

// errAttemptExpired aborts a submission that arrived after deadline plus grace.
var errAttemptExpired = errors.New("attempt expired")

func NewAttemptService(
	db *gorm.DB,
	testRepo repository.TestRepository,
	attemptRepo repository.TestAttemptRepository,
	answerRepo repository.AttemptAnswerRepository,
	eventRepo repository.EventRepository,
	scorer scoring.Scorer,
	m *metrics.Metrics,
	clock Clock,
	cfg *config.Config,
) AttemptService {
	return &attemptService{
		db:          db,
		testRepo:    testRepo,
		attemptRepo: attemptRepo,
		answerRepo:  answerRepo,
		eventRepo:   eventRepo,
		scorer:      scorer,
		metrics:     m,
		now:         clock,
		grace:       cfg.Reaper.Grace,
		shuffle:     rand.Shuffle,
	}
}

// GetTestForTaking returns an active test without anything that reveals the
// correct answers. Sequence options come back shuffled.
func (s *attemptService) GetTestForTaking(ctx context.Context, testID uuid.UUID) (*dto.TakingTestResponse, error) {
	test, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
	if err != nil {
		return nil, storeError("load test", "test", testID, err)
	}
	if test.Status != model.TestStatusActive {
		return nil, apperror.NotFound("active test", testID)
	}

	resp := &dto.TakingTestResponse{
		ID:           test.ID,
		Title:        test.Title,
		Description:  test.Description,
		Type:         test.Type,
		PassingScore: test.PassingScore,
		TimeLimit:    test.TimeLimit,
		Questions:    make([]dto.TakingQuestion, 0, len(test.Questions)),
	}
	for _, q := range test.Questions {
		tq := dto.TakingQuestion{ID: q.ID, Text: q.Text, QuestionType: q.QuestionType, Order: q.Order, Points: q.Points}
		for _, a := range q.Answers {
			tq.Answers = append(tq.Answers, dto.TakingAnswerOption{ID: a.ID, Text: a.Text})
		}
		if q.QuestionType == model.QuestionSequence {
			s.shuffle(len(tq.Answers), func(i, j int) {
				tq.Answers[i], tq.Answers[j] = tq.Answers[j], tq.Answers[i]
			})
		}
		resp.Questions = append(resp.Questions, tq)
	}
	return resp, nil
}

// StartAttempt returns the attempt the user should work on. An in_progress
// attempt for the same test and event is resumed, a scored one blocks a retake.
func (s *attemptService) StartAttempt(ctx context.Context, userID, testID, eventID uuid.UUID) (*dto.AttemptResponse, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, storeError("load test", "test", testID, err)
	}
	if test.Status != model.TestStatusActive {
		return nil, apperror.Conflict("test %s is %s", testID, test.Status)
	}
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, storeError("load event", "event", eventID, err)
	}

	if test.Type == model.TestTypeAnnual {
		if err := CheckAnnualAvailability(*event, s.now()); err != nil {
			s.metrics.AttemptsStarted.WithLabelValues("not_available").Inc()
			return nil, err
		}
	}

	latest, err := s.attemptRepo.FindLatest(ctx, userID, testID, eventID)
	switch {
	case err == nil && latest.Score != nil:
		s.metrics.AttemptsStarted.WithLabelValues("already_completed").Inc()
		return nil, &apperror.AlreadyCompletedError{AttemptID: latest.ID, Score: *latest.Score}
	case err == nil && latest.Status == model.AttemptInProgress:
		s.metrics.AttemptsStarted.WithLabelValues("resumed").Inc()
		return s.attemptResponse(latest, test, true), nil
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error().Err(err).Str("testID", testID.String()).Str("userID", userID.String()).Msg("Failed to look up previous attempts")
		return nil, apperror.Persistence("load attempts", err)
	}

	attempt := &model.TestAttempt{
		TestID:    testID,
		EventID:   eventID,
		UserID:    userID,
		Status:    model.AttemptInProgress,
		StartTime: s.now(),
	}
	created, err := s.attemptRepo.CreateIfAbsent(ctx, attempt)
	if err != nil {
		log.Error().Err(err).Str("testID", testID.String()).Str("userID", userID.String()).Msg("Failed to create attempt")
		return nil, apperror.Persistence("create attempt", err)
	}
	if !created {
		// a concurrent start won the insert; hand out its attempt
		open, err := s.attemptRepo.FindOpen(ctx, userID, testID, eventID)
		if err != nil {
			return nil, apperror.Persistence("load open attempt", err)
		}
		s.metrics.AttemptsStarted.WithLabelValues("resumed").Inc()
		return s.attemptResponse(open, test, true), nil
	}

	s.metrics.AttemptsStarted.WithLabelValues("created").Inc()
	log.Info().Str("attemptID", attempt.ID.String()).Str("testID", testID.String()).Str("userID", userID.String()).Msg("Attempt started")
	return s.attemptResponse(attempt, test, false), nil
}

func (s *attemptService) SubmitAnswers(ctx context.Context, attemptID, userID uuid.UUID, req dto.SubmitAnswersRequest) (*dto.AttemptResultResponse, error) {
	var (
		attempt *model.TestAttempt
		test    *model.Test
		result  scoring.Result
		rows    []model.AttemptAnswer
		expired time.Time
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempts := s.attemptRepo.WithTx(tx)
		var err error
		attempt, err = attempts.FindByID(ctx, attemptID)
		if err != nil {
			return storeError("load attempt", "attempt", attemptID, err)
		}
		if attempt.UserID != userID {
			return fmt.Errorf("attempt %s belongs to another user: %w", attemptID, apperror.ErrForbidden)
		}
		if !attempt.CanTransition(model.AttemptCompleted) {
			return &apperror.InvalidTransitionError{From: string(attempt.Status), To: string(model.AttemptCompleted)}
		}

		test, err = s.testRepo.WithTx(tx).FindByIDWithQuestions(ctx, attempt.TestID)
		if err != nil {
			return storeError("load test", "test", attempt.TestID, err)
		}
		if deadline, ok := attempt.Deadline(test.TimeLimitDuration()); ok && !s.now().Before(deadline.Add(s.grace)) {
			expired = deadline
			return errAttemptExpired
		}
		subs, err := submissionsFor(test, req.Answers)
		if err != nil {
			return err
		}

		result = s.scorer.ScoreAttempt(*test, test.Questions, subs)
		logInconsistencies(attemptID, result)

		correct := make(map[uuid.UUID]bool, len(result.Questions))
		for _, qr := range result.Questions {
			correct[qr.QuestionID] = qr.Correct
		}
		rows = make([]model.AttemptAnswer, 0, len(subs))
		for _, sub := range subs {
			rows = append(rows, model.AttemptAnswer{
				AttemptID:  attemptID,
				QuestionID: sub.QuestionID,
				AnswerID:   sub.AnswerID,
				AnswerIDs:  datatypes.NewJSONSlice(sub.AnswerIDs),
				TextAnswer: sub.TextAnswer,
				UserOrder:  datatypes.NewJSONSlice(sub.UserOrder),
				IsCorrect:  correct[sub.QuestionID],
			})
		}
		if err := s.answerRepo.WithTx(tx).Upsert(ctx, rows); err != nil {
			return apperror.Persistence("save answers", err)
		}

		end := s.now()
		score := result.Percentage
		finished, err := attempts.Finish(ctx, attemptID, model.AttemptCompleted, &score, end)
		if err != nil {
			return apperror.Persistence("finish attempt", err)
		}
		if !finished {
			return &apperror.InvalidTransitionError{From: "terminal", To: string(model.AttemptCompleted)}
		}
		attempt.Status = model.AttemptCompleted
		attempt.Score = &score
		attempt.EndTime = &end
		return nil
	})
	if errors.Is(err, errAttemptExpired) {
		return nil, s.expire(ctx, attemptID, expired)
	}
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("Failed to submit answers")
		return nil, passThrough("submit answers", err)
	}

	s.metrics.AttemptsFinished.WithLabelValues(string(model.AttemptCompleted)).Inc()
	s.metrics.AttemptScores.Observe(float64(result.Percentage))
	log.Info().Str("attemptID", attemptID.String()).Int("score", result.Percentage).Bool("passed", result.Passed).Msg("Attempt completed")
	return s.resultResponse(attempt, test, rows, result), nil
}

// expire fails a timed out attempt the way the reaper does, with end_time at
// the deadline, and reports the refused completion.
func (s *attemptService) expire(ctx context.Context, attemptID uuid.UUID, deadline time.Time) error {
	finished, err := s.attemptRepo.Finish(ctx, attemptID, model.AttemptFailed, nil, deadline)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("Failed to expire attempt")
		return apperror.Persistence("expire attempt", err)
	}
	if finished {
		s.metrics.AttemptsFinished.WithLabelValues(string(model.AttemptFailed)).Inc()
		log.Info().Str("attemptID", attemptID.String()).Time("deadline", deadline).Msg("Late submission refused, attempt marked failed")
	}
	return &apperror.InvalidTransitionError{From: "expired", To: string(model.AttemptCompleted)}
}

// submissionsFor checks that every answer targets a question of the test,
// at most once, and converts the answers for the scorer.
func submissionsFor(test *model.Test, answers []dto.AnswerSubmission) ([]scoring.Submission, error) {
	questions := make(map[uuid.UUID]bool, len(test.Questions))
	for _, q := range test.Questions {
		questions[q.ID] = true
	}
	verr := &apperror.ValidationError{}
	seen := make(map[uuid.UUID]bool, len(answers))
	subs := make([]scoring.Submission, 0, len(answers))
	for _, a := range answers {
		if !questions[a.QuestionID] {
			verr.Add("question %s is not part of the test", a.QuestionID)
			continue
		}
		if seen[a.QuestionID] {
			verr.Add("question %s is answered twice", a.QuestionID)
			continue
		}
		seen[a.QuestionID] = true
		subs = append(subs, scoring.Submission{
			QuestionID: a.QuestionID,
			AnswerID:   a.AnswerID,
			AnswerIDs:  a.AnswerIDs,
			TextAnswer: a.TextAnswer,
			UserOrder:  a.UserOrder,
		})
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return subs, nil
}

func logInconsistencies(attemptID uuid.UUID, result scoring.Result) {
	for _, inc := range result.Inconsistencies {
		log.Warn().Err(inc).Str("attemptID", attemptID.String()).Msg("Scoring inconsistency")
	}
}

func (s *attemptService) AbandonAttempt(ctx context.Context, attemptID, userID uuid.UUID) (*dto.AttemptResponse, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, attemptID)
	if err != nil {
		return nil, storeError("load attempt", "attempt", attemptID, err)
	}
	if attempt.UserID != userID {
		return nil, fmt.Errorf("attempt %s belongs to another user: %w", attemptID, apperror.ErrForbidden)
	}
	if !attempt.CanTransition(model.AttemptFailed) {
		return nil, &apperror.InvalidTransitionError{From: string(attempt.Status), To: string(model.AttemptFailed)}
	}

	end := s.now()
	finished, err := s.attemptRepo.Finish(ctx, attemptID, model.AttemptFailed, nil, end)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("Failed to abandon attempt")
		return nil, apperror.Persistence("abandon attempt", err)
	}
	if !finished {
		return nil, &apperror.InvalidTransitionError{From: "terminal", To: string(model.AttemptFailed)}
	}
	attempt.Status = model.AttemptFailed
	attempt.EndTime = &end
	s.metrics.AttemptsFinished.WithLabelValues(string(model.AttemptFailed)).Inc()
	log.Info().Str("attemptID", attemptID.String()).Msg("Attempt abandoned")
	return s.attemptResponse(attempt, nil, false), nil
}

// LoadResults recomputes correctness from the stored answers and the current
// test definition. Only the owner, or a viewer allowed to see all results, may load them.
func (s *attemptService) LoadResults(ctx context.Context, attemptID, viewerID uuid.UUID, caps access.Capabilities) (*dto.AttemptResultResponse, error) {
	attempt, err := s.attemptRepo.FindByIDWithAnswers(ctx, attemptID)
	if err != nil {
		return nil, storeError("load attempt", "attempt", attemptID, err)
	}
	if attempt.UserID != viewerID && !caps.CanViewAllResults {
		return nil, fmt.Errorf("results of attempt %s: %w", attemptID, apperror.ErrForbidden)
	}
	test, err := s.testRepo.FindByIDWithQuestions(ctx, attempt.TestID)
	if err != nil {
		return nil, storeError("load test", "test", attempt.TestID, err)
	}
	return s.score(attempt, test), nil
}

func (s *attemptService) score(attempt *model.TestAttempt, test *model.Test) *dto.AttemptResultResponse {
	subs := make([]scoring.Submission, 0, len(attempt.Answers))
	for _, a := range attempt.Answers {
		subs = append(subs, scoring.SubmissionFromAnswer(a))
	}
	result := s.scorer.ScoreAttempt(*test, test.Questions, subs)
	logInconsistencies(attempt.ID, result)
	return s.resultResponse(attempt, test, attempt.Answers, result)
}

func (s *attemptService) ListAttempts(ctx context.Context, filter repository.AttemptFilter) ([]dto.AttemptResponse, error) {
	attempts, err := s.attemptRepo.FindAll(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list attempts")
		return nil, apperror.Persistence("list attempts", err)
	}
	resp := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		resp = append(resp, *s.attemptResponse(&attempts[i], nil, false))
	}
	return resp, nil
}

// GradeTextAnswer stores a manual verdict for a text answer of a completed
// attempt and re-scores the attempt.
func (s *attemptService) GradeTextAnswer(ctx context.Context, attemptID, questionID uuid.UUID, isCorrect bool) (*dto.AttemptResultResponse, error) {
	var resp *dto.AttemptResultResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempts := s.attemptRepo.WithTx(tx)
		attempt, err := attempts.FindByID(ctx, attemptID)
		if err != nil {
			return storeError("load attempt", "attempt", attemptID, err)
		}
		if attempt.Status != model.AttemptCompleted {
			return apperror.Conflict("attempt %s is %s, only completed attempts can be graded", attemptID, attempt.Status)
		}
		test, err := s.testRepo.WithTx(tx).FindByIDWithQuestions(ctx, attempt.TestID)
		if err != nil {
			return storeError("load test", "test", attempt.TestID, err)
		}
		var question *model.Question
		for i := range test.Questions {
			if test.Questions[i].ID == questionID {
				question = &test.Questions[i]
			}
		}
		if question == nil {
			return apperror.NotFound("question", questionID)
		}
		if question.QuestionType != model.QuestionText {
			verr := &apperror.ValidationError{}
			verr.Add("question %s is %s, only text answers are graded manually", questionID, question.QuestionType)
			return verr
		}

		answers := s.answerRepo.WithTx(tx)
		if err := answers.SetCorrect(ctx, attemptID, questionID, isCorrect); err != nil {
			return storeError("grade answer", "answer", questionID, err)
		}
		stored, err := answers.FindByAttemptID(ctx, attemptID)
		if err != nil {
			return apperror.Persistence("load answers", err)
		}
		attempt.Answers = stored
		resp = s.score(attempt, test)
		if err := attempts.UpdateScore(ctx, attemptID, resp.Percentage); err != nil {
			return apperror.Persistence("update score", err)
		}
		score := resp.Percentage
		resp.Attempt.Score = &score
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Str("questionID", questionID.String()).Msg("Failed to grade answer")
		return nil, passThrough("grade answer", err)
	}
	log.Info().Str("attemptID", attemptID.String()).Str("questionID", questionID.String()).Bool("correct", isCorrect).Msg("Text answer graded")
	return resp, nil
}

// attemptResponse maps an attempt; test is optional and only used for the deadline.
func (s *attemptService) attemptResponse(attempt *model.TestAttempt, test *model.Test, resumed bool) *dto.AttemptResponse {
	var resp dto.AttemptResponse
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Error().Err(err).Str("attemptID", attempt.ID.String()).Msg("Failed to copy TestAttempt model to AttemptResponse")
	}
	resp.Resumed = resumed
	if test != nil {
		if deadline, ok := attempt.Deadline(test.TimeLimitDuration()); ok {
			resp.Deadline = &deadline
		}
	}
	return &resp
}

func (s *attemptService) resultResponse(attempt *model.TestAttempt, test *model.Test, answers []model.AttemptAnswer, result scoring.Result) *dto.AttemptResultResponse {
	byQuestion := make(map[uuid.UUID]model.AttemptAnswer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	resp := &dto.AttemptResultResponse{
		Attempt:      *s.attemptResponse(attempt, test, false),
		TestTitle:    test.Title,
		PassingScore: test.PassingScore,
		EarnedPoints: result.EarnedPoints,
		TotalPoints:  result.TotalPoints,
		Percentage:   result.Percentage,
		CorrectCount: result.CorrectCount,
		TotalCount:   result.TotalCount,
		Passed:       result.Passed,
		Questions:    make([]dto.QuestionResultResponse, 0, len(test.Questions)),
	}
	for i, q := range test.Questions {
		qr := result.Questions[i]
		row := dto.QuestionResultResponse{
			QuestionID:   q.ID,
			Text:         q.Text,
			QuestionType: q.QuestionType,
			Order:        q.Order,
			Points:       q.Points,
			Answered:     qr.Answered,
			Correct:      qr.Correct,
			Earned:       qr.Earned,
		}
		if a, ok := byQuestion[q.ID]; ok {
			row.AnswerID = a.AnswerID
			row.AnswerIDs = []uuid.UUID(a.AnswerIDs)
			row.TextAnswer = a.TextAnswer
			row.UserOrder = []uuid.UUID(a.UserOrder)
		}
		switch {
		case q.QuestionType.IsChoice():
			row.CorrectAnswerIDs = q.CorrectAnswerIDs()
		case q.QuestionType == model.QuestionSequence:
			row.ReferenceOrder = scoring.ReferenceOrder(q)
		}
		if err := copier.Copy(&row.Options, &q.Answers); err != nil {
			log.Error().Err(err).Str("questionID", q.ID.String()).Msg("Failed to copy answer options")
		}
		resp.Questions = append(resp.Questions, row)
	}
	return resp
}
