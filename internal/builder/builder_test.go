package builder

import (
	"errors"
	"testing"

	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointsOf(qs []model.Question) []int {
	out := make([]int, len(qs))
	for i, q := range qs {
		out[i] = q.Points
	}
	return out
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func TestDistributePoints(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{n: 1, want: []int{100}},
		{n: 2, want: []int{50, 50}},
		{n: 3, want: []int{33, 33, 34}},
		{n: 6, want: []int{16, 16, 16, 16, 16, 20}},
		{n: 7, want: []int{14, 14, 14, 14, 14, 14, 16}},
	}
	for _, tc := range tests {
		qs := make([]model.Question, tc.n)
		for i := range qs {
			qs[i].Order = i + 1
		}
		DistributePoints(qs)
		assert.Equal(t, tc.want, pointsOf(qs), "n=%d", tc.n)
	}
}

func TestDistributePoints_SumAlwaysHundred(t *testing.T) {
	for n := 1; n <= 150; n++ {
		qs := make([]model.Question, n)
		for i := range qs {
			qs[i].Order = i + 1
		}
		DistributePoints(qs)
		require.Equal(t, 100, sum(pointsOf(qs)), "n=%d", n)
	}
}

func TestDistributePoints_RemainderGoesToHighestOrder(t *testing.T) {
	qs := []model.Question{{Order: 3}, {Order: 1}, {Order: 2}}
	DistributePoints(qs)
	assert.Equal(t, []int{34, 33, 33}, pointsOf(qs))
}

func TestAddQuestion(t *testing.T) {
	d := NewDraft(model.Test{Title: "Safety"})
	assert.Equal(t, model.TestStatusDraft, d.Test.Status)

	q := d.AddQuestion()
	assert.Equal(t, 1, q.Order)
	assert.Equal(t, model.QuestionSingleChoice, q.QuestionType)
	assert.Equal(t, 100, q.Points)

	d.AddQuestion()
	d.AddQuestion()
	assert.Equal(t, []int{33, 33, 34}, pointsOf(d.Test.Questions))
	assert.Equal(t, 3, d.Test.Questions[2].Order)
}

func TestDeleteQuestion_KeepsGapsAndRenormalizes(t *testing.T) {
	d := NewDraft(model.Test{Title: "Safety"})
	d.AddQuestion()
	d.AddQuestion()
	d.AddQuestion()

	require.NoError(t, d.DeleteQuestion(1))
	require.Len(t, d.Test.Questions, 2)
	assert.Equal(t, 1, d.Test.Questions[0].Order)
	assert.Equal(t, 3, d.Test.Questions[1].Order)
	assert.Equal(t, []int{50, 50}, pointsOf(d.Test.Questions))

	q := d.AddQuestion()
	assert.Equal(t, 4, q.Order)

	assert.ErrorIs(t, d.DeleteQuestion(7), ErrIndexOutOfRange)
}

func TestAddAnswerAndDelete(t *testing.T) {
	d := NewDraft(model.Test{Title: "Safety"})
	d.AddQuestion()

	a1, err := d.AddAnswer(0)
	require.NoError(t, err)
	assert.Equal(t, 1, a1.Order)
	_, _ = d.AddAnswer(0)
	a3, _ := d.AddAnswer(0)
	assert.Equal(t, 3, a3.Order)

	require.NoError(t, d.DeleteAnswer(0, 0))
	orders := []int{d.Test.Questions[0].Answers[0].Order, d.Test.Questions[0].Answers[1].Order}
	assert.Equal(t, []int{2, 3}, orders)

	a4, _ := d.AddAnswer(0)
	assert.Equal(t, 4, a4.Order)

	_, err = d.AddAnswer(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, d.DeleteAnswer(0, 9), ErrIndexOutOfRange)
}

func TestReorderAnswers(t *testing.T) {
	d := NewDraft(model.Test{Title: "Steps"})
	q := d.AddQuestion()
	q.QuestionType = model.QuestionSequence
	for _, text := range []string{"A", "B", "C", "D"} {
		a, err := d.AddAnswer(0)
		require.NoError(t, err)
		a.Text = text
	}

	require.NoError(t, d.ReorderAnswers(0, 3, 0))
	texts := func() []string {
		var out []string
		for _, a := range d.Test.Questions[0].Answers {
			out = append(out, a.Text)
		}
		return out
	}
	assert.Equal(t, []string{"D", "A", "B", "C"}, texts())

	require.NoError(t, d.ReorderAnswers(0, 1, 3))
	assert.Equal(t, []string{"D", "B", "C", "A"}, texts())
	for i, a := range d.Test.Questions[0].Answers {
		assert.Equal(t, i+1, a.Order)
	}

	assert.ErrorIs(t, d.ReorderAnswers(0, 0, 4), ErrIndexOutOfRange)
}

func validTest() model.Test {
	return model.Test{
		Title:  "Onboarding",
		Type:   model.TestTypeEntry,
		Status: model.TestStatusDraft,
		Questions: []model.Question{
			{Text: "Pick one", QuestionType: model.QuestionSingleChoice, Order: 1, Answers: []model.AnswerOption{
				{Text: "yes", IsCorrect: true, Order: 1}, {Text: "no", Order: 2},
			}},
			{Text: "Pick many", QuestionType: model.QuestionMultipleChoice, Order: 2, Answers: []model.AnswerOption{
				{Text: "a", IsCorrect: true, Order: 1}, {Text: "b", IsCorrect: true, Order: 2},
			}},
			{Text: "Order them", QuestionType: model.QuestionSequence, Order: 3, Answers: []model.AnswerOption{
				{Text: "first", Order: 1}, {Text: "second", Order: 2},
			}},
			{Text: "Explain", QuestionType: model.QuestionText, Order: 4},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validTest()))
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Test)
		want   string
	}{
		{name: "empty title", mutate: func(t *model.Test) { t.Title = "  " }, want: "title is required"},
		{name: "no questions", mutate: func(t *model.Test) { t.Questions = nil }, want: "at least one question"},
		{name: "empty question text", mutate: func(t *model.Test) { t.Questions[0].Text = "" }, want: "question 1: text is required"},
		{name: "choice without options", mutate: func(t *model.Test) { t.Questions[1].Answers = nil }, want: "question 2: at least one answer option"},
		{name: "single choice two correct", mutate: func(t *model.Test) { t.Questions[0].Answers[1].IsCorrect = true }, want: "exactly one correct answer, has 2"},
		{name: "single choice none correct", mutate: func(t *model.Test) { t.Questions[0].Answers[0].IsCorrect = false }, want: "exactly one correct answer, has 0"},
		{name: "multiple choice none correct", mutate: func(t *model.Test) {
			t.Questions[1].Answers[0].IsCorrect = false
			t.Questions[1].Answers[1].IsCorrect = false
		}, want: "at least one correct answer"},
		{name: "empty answer text", mutate: func(t *model.Test) { t.Questions[2].Answers[1].Text = "" }, want: "question 3: answer 2 text is required"},
		{name: "passing score too high", mutate: func(t *model.Test) { t.PassingScore = 101 }, want: "passing score"},
		{name: "duplicate order", mutate: func(t *model.Test) { t.Questions[3].Order = 1 }, want: "order 1 is used twice"},
		{name: "sequence items share an order", mutate: func(t *model.Test) {
			t.Questions[2].Answers[1].Order = 1
		}, want: "question 3: answer 2 order 1 is used twice"},
		{name: "sequence items without order", mutate: func(t *model.Test) {
			t.Questions[2].Answers[0].Order = 0
			t.Questions[2].Answers[1].Order = 0
		}, want: "question 3: answer 2 order 0 is used twice"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			test := validTest()
			tc.mutate(&test)
			err := Validate(test)
			var verr *apperror.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Contains(t, verr.Error(), tc.want)
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	err := Validate(model.Test{Type: model.TestTypeFinal, Status: model.TestStatusDraft})
	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 2)
}
