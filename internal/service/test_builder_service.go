package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"github.com/maxty9378/paneldoirp-sub002/internal/builder"
	"github.com/maxty9378/paneldoirp-sub002/internal/dto"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"github.com/maxty9378/paneldoirp-sub002/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TestBuilderService interface {
	CreateTest(ctx context.Context, authorID uuid.UUID, req dto.TestSaveDTO) (*dto.TestDetailResponse, error)
	SaveTest(ctx context.Context, testID uuid.UUID, req dto.TestSaveDTO) (*dto.TestDetailResponse, error)
	ValidateTest(req dto.TestSaveDTO) error
	GetTest(ctx context.Context, testID uuid.UUID) (*dto.TestDetailResponse, error)
	ListTests(ctx context.Context, filter repository.TestFilter) ([]dto.TestSummaryResponse, error)
	SetStatus(ctx context.Context, testID uuid.UUID, status model.TestStatus) error
	DeleteTest(ctx context.Context, testID uuid.UUID) error
}

type testBuilderService struct {
	db           *gorm.DB
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

func NewTestBuilderService(
	db *gorm.DB,
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
) TestBuilderService {
	return &testBuilderService{
		db:           db,
		testRepo:     testRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

// draftFromDTO converts a save request into a test definition with defaults
// applied and points normalized. Question and option ids are kept as sent.
func draftFromDTO(req dto.TestSaveDTO) model.Test {
	test := model.Test{
		Title:        req.Title,
		Description:  req.Description,
		Type:         model.TestType(req.Type),
		PassingScore: req.PassingScore,
		TimeLimit:    req.TimeLimit,
		Status:       model.TestStatus(req.Status),
		EventTypeID:  req.EventTypeID,
	}
	for _, qDto := range req.Questions {
		q := model.Question{
			Text:         qDto.Text,
			QuestionType: model.QuestionType(qDto.QuestionType),
			Order:        qDto.Order,
		}
		if qDto.ID != nil {
			q.ID = *qDto.ID
		}
		for _, aDto := range qDto.Answers {
			a := model.AnswerOption{Text: aDto.Text, IsCorrect: aDto.IsCorrect, Order: aDto.Order}
			if aDto.ID != nil {
				a.ID = *aDto.ID
			}
			q.Answers = append(q.Answers, a)
		}
		test.Questions = append(test.Questions, q)
	}
	draft := builder.NewDraft(test)
	builder.DistributePoints(draft.Test.Questions)
	return draft.Test
}

func (s *testBuilderService) ValidateTest(req dto.TestSaveDTO) error {
	return builder.Validate(draftFromDTO(req))
}

func (s *testBuilderService) CreateTest(ctx context.Context, authorID uuid.UUID, req dto.TestSaveDTO) (*dto.TestDetailResponse, error) {
	test := draftFromDTO(req)
	if err := builder.Validate(test); err != nil {
		return nil, err
	}
	// a new test never reuses ids sent by the client
	for i := range test.Questions {
		test.Questions[i].ID = uuid.Nil
		for j := range test.Questions[i].Answers {
			test.Questions[i].Answers[j].ID = uuid.Nil
		}
	}
	if authorID != uuid.Nil {
		test.CreatedBy = &authorID
	}

	if err := s.testRepo.Create(ctx, &test); err != nil {
		log.Error().Err(err).Str("title", test.Title).Msg("Failed to create test in database")
		return nil, apperror.Persistence("create test", err)
	}
	log.Info().Str("testID", test.ID.String()).Int("questions", len(test.Questions)).Msg("Test created")
	return s.GetTest(ctx, test.ID)
}

func (s *testBuilderService) SaveTest(ctx context.Context, testID uuid.UUID, req dto.TestSaveDTO) (*dto.TestDetailResponse, error) {
	test := draftFromDTO(req)
	if err := builder.Validate(test); err != nil {
		return nil, err
	}
	test.ID = testID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tests := s.testRepo.WithTx(tx)
		existing, err := tests.FindByID(ctx, testID)
		if err != nil {
			return storeError("load test", "test", testID, err)
		}
		test.CreatedBy = existing.CreatedBy
		test.CreatedAt = existing.CreatedAt
		if req.Status == "" {
			test.Status = existing.Status
		}
		if err := tests.Save(ctx, &test); err != nil {
			return apperror.Persistence("save test", err)
		}
		return s.syncQuestions(ctx, tx, testID, test.Questions)
	})
	if err != nil {
		log.Error().Err(err).Str("testID", testID.String()).Msg("Failed to save test")
		return nil, passThrough("save test", err)
	}
	return s.GetTest(ctx, testID)
}

// syncQuestions makes the stored questions of a test match incoming: known ids
// are updated, the rest inserted, and stored questions not sent are removed
// together with their options.
func (s *testBuilderService) syncQuestions(ctx context.Context, tx *gorm.DB, testID uuid.UUID, incoming []model.Question) error {
	questions := s.questionRepo.WithTx(tx)
	stored, err := questions.FindByTestID(ctx, testID)
	if err != nil {
		return apperror.Persistence("load questions", err)
	}
	byID := make(map[uuid.UUID]model.Question, len(stored))
	for _, q := range stored {
		byID[q.ID] = q
	}

	kept := make(map[uuid.UUID]bool, len(incoming))
	for i := range incoming {
		q := incoming[i]
		q.TestID = testID
		var previous []model.AnswerOption
		if prev, ok := byID[q.ID]; ok {
			q.CreatedAt = prev.CreatedAt
			previous = prev.Answers
		} else {
			q.ID = uuid.Nil
		}
		if err := questions.Save(ctx, &q); err != nil {
			return apperror.Persistence("save question", err)
		}
		kept[q.ID] = true
		if err := s.syncAnswers(ctx, tx, q.ID, previous, q.Answers); err != nil {
			return err
		}
	}

	var removed []uuid.UUID
	for _, q := range stored {
		if !kept[q.ID] {
			removed = append(removed, q.ID)
		}
	}
	if err := questions.DeleteWithAnswers(ctx, removed); err != nil {
		return apperror.Persistence("delete questions", err)
	}
	return nil
}

// syncAnswers diffs the options of one question so option ids survive edits.
func (s *testBuilderService) syncAnswers(ctx context.Context, tx *gorm.DB, questionID uuid.UUID, previous, incoming []model.AnswerOption) error {
	answers := s.answerRepo.WithTx(tx)
	byID := make(map[uuid.UUID]model.AnswerOption, len(previous))
	for _, a := range previous {
		byID[a.ID] = a
	}

	kept := make(map[uuid.UUID]bool, len(incoming))
	for _, a := range incoming {
		a.QuestionID = questionID
		if prev, ok := byID[a.ID]; ok {
			a.CreatedAt = prev.CreatedAt
		} else {
			a.ID = uuid.Nil
		}
		if err := answers.Save(ctx, &a); err != nil {
			return apperror.Persistence("save answer option", err)
		}
		kept[a.ID] = true
	}

	var removed []uuid.UUID
	for _, a := range previous {
		if !kept[a.ID] {
			removed = append(removed, a.ID)
		}
	}
	if err := answers.DeleteByIDs(ctx, removed); err != nil {
		return apperror.Persistence("delete answer options", err)
	}
	return nil
}

func (s *testBuilderService) GetTest(ctx context.Context, testID uuid.UUID) (*dto.TestDetailResponse, error) {
	test, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
	if err != nil {
		return nil, storeError("load test", "test", testID, err)
	}
	var resp dto.TestDetailResponse
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to TestDetailResponse")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	if resp.Questions == nil {
		resp.Questions = []dto.QuestionResponse{}
	}
	return &resp, nil
}

func (s *testBuilderService) ListTests(ctx context.Context, filter repository.TestFilter) ([]dto.TestSummaryResponse, error) {
	rows, err := s.testRepo.FindAllWithQuestionCount(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list tests")
		return nil, apperror.Persistence("list tests", err)
	}
	resp := make([]dto.TestSummaryResponse, 0, len(rows))
	for _, row := range rows {
		var item dto.TestSummaryResponse
		if err := copier.Copy(&item, &row.Test); err != nil {
			return nil, fmt.Errorf("error preparing response data: %w", err)
		}
		item.QuestionCount = row.QuestionCount
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *testBuilderService) SetStatus(ctx context.Context, testID uuid.UUID, status model.TestStatus) error {
	if !status.Valid() {
		verr := &apperror.ValidationError{}
		verr.Add("unknown test status %q", status)
		return verr
	}
	if status == model.TestStatusActive {
		// only a complete definition may be published
		test, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
		if err != nil {
			return storeError("load test", "test", testID, err)
		}
		test.Status = status
		if err := builder.Validate(*test); err != nil {
			return err
		}
	}
	if err := s.testRepo.UpdateStatus(ctx, testID, status); err != nil {
		return storeError("update test status", "test", testID, err)
	}
	log.Info().Str("testID", testID.String()).Str("status", string(status)).Msg("Test status changed")
	return nil
}

func (s *testBuilderService) DeleteTest(ctx context.Context, testID uuid.UUID) error {
	if err := s.testRepo.Delete(ctx, testID); err != nil {
		log.Error().Err(err).Str("testID", testID.String()).Msg("Failed to delete test")
		return storeError("delete test", "test", testID, err)
	}
	log.Info().Str("testID", testID.String()).Msg("Test deleted")
	return nil
}
