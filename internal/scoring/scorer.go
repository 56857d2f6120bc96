// Package scoring decides answer correctness and aggregates attempt scores.
// Everything here is pure: the same inputs always produce the same result.
package scoring

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
)

// MultipleChoiceMode selects how multiple_choice questions are judged.
type MultipleChoiceMode string

const (
	// ModeExactSet requires the selected ids to equal the set of correct ids.
	ModeExactSet MultipleChoiceMode = "exact_set"
	// ModeSingle checks one selected id against its is_correct flag, like single_choice.
	ModeSingle MultipleChoiceMode = "single"
)

func (m MultipleChoiceMode) Valid() bool {
	return m == ModeExactSet || m == ModeSingle
}

// Submission is what a user answered for one question.
type Submission struct {
	QuestionID uuid.UUID
	AnswerID   *uuid.UUID
	AnswerIDs  []uuid.UUID
	TextAnswer *string
	UserOrder  []uuid.UUID
	// IsCorrect carries the manual grade of a text answer.
	IsCorrect *bool
}

// SubmissionFromAnswer rebuilds a submission from a stored answer row.
// The stored is_correct flag is only trusted for text questions.
func SubmissionFromAnswer(a model.AttemptAnswer) Submission {
	graded := a.IsCorrect
	return Submission{
		QuestionID: a.QuestionID,
		AnswerID:   a.AnswerID,
		AnswerIDs:  []uuid.UUID(a.AnswerIDs),
		TextAnswer: a.TextAnswer,
		UserOrder:  []uuid.UUID(a.UserOrder),
		IsCorrect:  &graded,
	}
}

// Answered reports whether the submission carries any answer at all.
func (s Submission) Answered() bool {
	return s.AnswerID != nil || len(s.AnswerIDs) > 0 || s.TextAnswer != nil || len(s.UserOrder) > 0
}

type Scorer struct {
	mode MultipleChoiceMode
}

// NewScorer returns a scorer; an unknown mode falls back to ModeExactSet.
func NewScorer(mode MultipleChoiceMode) Scorer {
	if !mode.Valid() {
		mode = ModeExactSet
	}
	return Scorer{mode: mode}
}

func (s Scorer) Mode() MultipleChoiceMode { return s.mode }

// Default is the scorer used by the package level helpers.
var Default = NewScorer(ModeExactSet)

// ScoreAnswer reports whether the submission answers the question correctly.
// A nil submission is an unanswered question.
func ScoreAnswer(q model.Question, sub *Submission) bool {
	return Default.ScoreAnswer(q, sub)
}

func (s Scorer) ScoreAnswer(q model.Question, sub *Submission) bool {
	ok, _ := s.Check(q, sub)
	return ok
}

// Check is ScoreAnswer plus a *apperror.ScoringInconsistencyError when the
// submission references options the question does not own. The boolean is
// always false in that case.
func (s Scorer) Check(q model.Question, sub *Submission) (bool, error) {
	if sub == nil {
		return false, nil
	}
	switch q.QuestionType {
	case model.QuestionSingleChoice:
		return checkSingle(q, sub.AnswerID)
	case model.QuestionMultipleChoice:
		if s.mode == ModeSingle {
			return checkSingle(q, sub.AnswerID)
		}
		return checkExactSet(q, selections(sub))
	case model.QuestionSequence:
		return checkSequence(q, sub.UserOrder)
	case model.QuestionText:
		return sub.IsCorrect != nil && *sub.IsCorrect, nil
	default:
		return false, &apperror.ScoringInconsistencyError{QuestionID: q.ID, Reason: "has unknown type " + string(q.QuestionType)}
	}
}

func checkSingle(q model.Question, answerID *uuid.UUID) (bool, error) {
	if answerID == nil || *answerID == uuid.Nil {
		return false, nil
	}
	opt := q.FindAnswer(*answerID)
	if opt == nil {
		return false, &apperror.ScoringInconsistencyError{QuestionID: q.ID, OptionID: *answerID, Reason: "does not belong to the question"}
	}
	return opt.IsCorrect, nil
}

func selections(sub *Submission) []uuid.UUID {
	if len(sub.AnswerIDs) > 0 {
		return sub.AnswerIDs
	}
	if sub.AnswerID != nil && *sub.AnswerID != uuid.Nil {
		return []uuid.UUID{*sub.AnswerID}
	}
	return nil
}

func checkExactSet(q model.Question, selected []uuid.UUID) (bool, error) {
	if len(selected) == 0 {
		return false, nil
	}
	chosen := make(map[uuid.UUID]struct{}, len(selected))
	for _, id := range selected {
		if q.FindAnswer(id) == nil {
			return false, &apperror.ScoringInconsistencyError{QuestionID: q.ID, OptionID: id, Reason: "does not belong to the question"}
		}
		chosen[id] = struct{}{}
	}
	correct := q.CorrectAnswerIDs()
	if len(correct) == 0 || len(correct) != len(chosen) {
		return false, nil
	}
	for _, id := range correct {
		if _, ok := chosen[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// ReferenceOrder returns option ids sorted by their stored order.
func ReferenceOrder(q model.Question) []uuid.UUID {
	opts := make([]model.AnswerOption, len(q.Answers))
	copy(opts, q.Answers)
	sort.SliceStable(opts, func(i, j int) bool { return opts[i].Order < opts[j].Order })
	ids := make([]uuid.UUID, len(opts))
	for i, o := range opts {
		ids[i] = o.ID
	}
	return ids
}

func checkSequence(q model.Question, userOrder []uuid.UUID) (bool, error) {
	if len(userOrder) == 0 {
		return false, nil
	}
	for _, id := range userOrder {
		if q.FindAnswer(id) == nil {
			return false, &apperror.ScoringInconsistencyError{QuestionID: q.ID, OptionID: id, Reason: "does not belong to the question"}
		}
	}
	ref := ReferenceOrder(q)
	if len(ref) != len(userOrder) {
		return false, nil
	}
	for i := range ref {
		if ref[i] != userOrder[i] {
			return false, nil
		}
	}
	return true, nil
}

type QuestionResult struct {
	QuestionID uuid.UUID `json:"question_id"`
	Answered   bool      `json:"answered"`
	Correct    bool      `json:"correct"`
	Points     int       `json:"points"`
	Earned     int       `json:"earned"`
}

type Result struct {
	EarnedPoints int              `json:"earned_points"`
	TotalPoints  int              `json:"total_points"`
	Percentage   int              `json:"percentage"`
	CorrectCount int              `json:"correct_count"`
	TotalCount   int              `json:"total_count"`
	Passed       bool             `json:"passed"`
	Questions    []QuestionResult `json:"questions"`
	// Inconsistencies lists submissions that referenced unknown options.
	Inconsistencies []error `json:"-"`
}

// ScoreAttempt scores every question of a test against the submissions,
// matched by question id. Questions without a submission earn nothing.
func ScoreAttempt(test model.Test, questions []model.Question, subs []Submission) Result {
	return Default.ScoreAttempt(test, questions, subs)
}

func (s Scorer) ScoreAttempt(test model.Test, questions []model.Question, subs []Submission) Result {
	byQuestion := make(map[uuid.UUID]*Submission, len(subs))
	for i := range subs {
		byQuestion[subs[i].QuestionID] = &subs[i]
	}

	res := Result{TotalCount: len(questions), Questions: make([]QuestionResult, 0, len(questions))}
	for _, q := range questions {
		sub := byQuestion[q.ID]
		ok, err := s.Check(q, sub)
		if err != nil {
			res.Inconsistencies = append(res.Inconsistencies, err)
		}
		qr := QuestionResult{QuestionID: q.ID, Answered: sub != nil && sub.Answered(), Correct: ok, Points: q.Points}
		res.TotalPoints += q.Points
		if ok {
			qr.Earned = q.Points
			res.EarnedPoints += q.Points
			res.CorrectCount++
		}
		res.Questions = append(res.Questions, qr)
	}
	res.Percentage = Percentage(res.EarnedPoints, res.TotalPoints)
	res.Passed = Passed(test.PassingScore, res.Percentage)
	return res
}

// Percentage is round(earned/total*100), zero when total is zero.
func Percentage(earned, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(earned) / float64(total) * 100))
}

// Passed applies the inclusive threshold. A zero passing score still needs a
// non-zero percentage.
func Passed(passingScore, percentage int) bool {
	if passingScore > 0 {
		return percentage >= passingScore
	}
	return percentage > 0
}
