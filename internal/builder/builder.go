// Package builder composes test definitions in memory before they are saved.
package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// TotalPoints is what the points of every test add up to.
const TotalPoints = 100

// Draft is a test definition under construction.
type Draft struct {
	Test model.Test
}

func NewDraft(test model.Test) *Draft {
	if test.Status == "" {
		test.Status = model.TestStatusDraft
	}
	if test.Type == "" {
		test.Type = model.TestTypeEntry
	}
	return &Draft{Test: test}
}

// AddQuestion appends a single_choice question after the highest order and
// redistributes points.
func (d *Draft) AddQuestion() *model.Question {
	next := 1
	for _, q := range d.Test.Questions {
		if q.Order >= next {
			next = q.Order + 1
		}
	}
	d.Test.Questions = append(d.Test.Questions, model.Question{
		TestID:       d.Test.ID,
		QuestionType: model.QuestionSingleChoice,
		Order:        next,
	})
	DistributePoints(d.Test.Questions)
	return &d.Test.Questions[len(d.Test.Questions)-1]
}

// AddAnswer appends an option after the highest order. For sequence questions
// insertion order is the correct order.
func (d *Draft) AddAnswer(qIdx int) (*model.AnswerOption, error) {
	q, err := d.question(qIdx)
	if err != nil {
		return nil, err
	}
	next := 1
	for _, a := range q.Answers {
		if a.Order >= next {
			next = a.Order + 1
		}
	}
	q.Answers = append(q.Answers, model.AnswerOption{QuestionID: q.ID, Order: next})
	return &q.Answers[len(q.Answers)-1], nil
}

// ReorderAnswers moves the option at from to position to and renumbers all
// options 1..N.
func (d *Draft) ReorderAnswers(qIdx, from, to int) error {
	q, err := d.question(qIdx)
	if err != nil {
		return err
	}
	n := len(q.Answers)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move answer %d to %d of %d: %w", from, to, n, ErrIndexOutOfRange)
	}
	moved := q.Answers[from]
	rest := append(q.Answers[:from:from], q.Answers[from+1:]...)
	out := make([]model.AnswerOption, 0, n)
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	for i := range out {
		out[i].Order = i + 1
	}
	q.Answers = out
	return nil
}

// DeleteQuestion removes a question. Sibling orders keep their gaps; points are
// redistributed so they still add up to TotalPoints.
func (d *Draft) DeleteQuestion(idx int) error {
	if idx < 0 || idx >= len(d.Test.Questions) {
		return fmt.Errorf("delete question %d: %w", idx, ErrIndexOutOfRange)
	}
	d.Test.Questions = append(d.Test.Questions[:idx], d.Test.Questions[idx+1:]...)
	DistributePoints(d.Test.Questions)
	return nil
}

// DeleteAnswer removes an option without renumbering its siblings.
func (d *Draft) DeleteAnswer(qIdx, aIdx int) error {
	q, err := d.question(qIdx)
	if err != nil {
		return err
	}
	if aIdx < 0 || aIdx >= len(q.Answers) {
		return fmt.Errorf("delete answer %d: %w", aIdx, ErrIndexOutOfRange)
	}
	q.Answers = append(q.Answers[:aIdx], q.Answers[aIdx+1:]...)
	return nil
}

func (d *Draft) Validate() error {
	return Validate(d.Test)
}

func (d *Draft) question(idx int) (*model.Question, error) {
	if idx < 0 || idx >= len(d.Test.Questions) {
		return nil, fmt.Errorf("question %d: %w", idx, ErrIndexOutOfRange)
	}
	return &d.Test.Questions[idx], nil
}

// DistributePoints gives every question floor(100/N) points and the question
// with the highest order the remainder, so the total is exactly 100.
func DistributePoints(questions []model.Question) {
	n := len(questions)
	if n == 0 {
		return
	}
	each := TotalPoints / n
	last := 0
	for i := range questions {
		questions[i].Points = each
		if questions[i].Order >= questions[last].Order {
			last = i
		}
	}
	questions[last].Points = TotalPoints - each*(n-1)
}

// Validate checks a test definition before it may be persisted.
func Validate(t model.Test) error {
	verr := &apperror.ValidationError{}

	if strings.TrimSpace(t.Title) == "" {
		verr.Add("title is required")
	}
	if !t.Type.Valid() {
		verr.Add("unknown test type %q", t.Type)
	}
	if !t.Status.Valid() {
		verr.Add("unknown test status %q", t.Status)
	}
	if t.PassingScore < 0 || t.PassingScore > 100 {
		verr.Add("passing score must be between 0 and 100")
	}
	if t.TimeLimit < 0 {
		verr.Add("time limit cannot be negative")
	}
	if len(t.Questions) == 0 {
		verr.Add("test must have at least one question")
	}

	seenOrder := make(map[int]bool, len(t.Questions))
	for i, q := range t.Questions {
		n := i + 1
		if seenOrder[q.Order] {
			verr.Add("question %d: order %d is used twice", n, q.Order)
		}
		seenOrder[q.Order] = true

		if strings.TrimSpace(q.Text) == "" {
			verr.Add("question %d: text is required", n)
		}
		if !q.QuestionType.Valid() {
			verr.Add("question %d: unknown type %q", n, q.QuestionType)
			continue
		}

		correct := 0
		for j, a := range q.Answers {
			if strings.TrimSpace(a.Text) == "" {
				verr.Add("question %d: answer %d text is required", n, j+1)
			}
			if a.IsCorrect {
				correct++
			}
		}

		switch q.QuestionType {
		case model.QuestionSingleChoice:
			if len(q.Answers) == 0 {
				verr.Add("question %d: at least one answer option is required", n)
			} else if correct != 1 {
				verr.Add("question %d: single choice needs exactly one correct answer, has %d", n, correct)
			}
		case model.QuestionMultipleChoice:
			if len(q.Answers) == 0 {
				verr.Add("question %d: at least one answer option is required", n)
			} else if correct == 0 {
				verr.Add("question %d: multiple choice needs at least one correct answer", n)
			}
		case model.QuestionSequence:
			if len(q.Answers) < 2 {
				verr.Add("question %d: sequence needs at least two items", n)
			}
			// the reference order must be total
			orders := make(map[int]bool, len(q.Answers))
			for j, a := range q.Answers {
				if orders[a.Order] {
					verr.Add("question %d: answer %d order %d is used twice", n, j+1, a.Order)
				}
				orders[a.Order] = true
			}
		case model.QuestionText:
			if len(q.Answers) > 0 {
				verr.Add("question %d: text questions take no answer options", n)
			}
		}
	}
	return verr.OrNil()
}
