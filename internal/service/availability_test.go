package service

import (
	"errors"
	"testing"
	"time"

	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAnnualAvailableOn(t *testing.T) {
	end := date(2024, time.March, 20)
	tests := []struct {
		name  string
		event model.Event
		want  time.Time
	}{
		{name: "end date wins", event: model.Event{StartDate: date(2024, time.March, 18), EndDate: &end}, want: date(2024, time.June, 20)},
		{name: "start date without end", event: model.Event{StartDate: date(2024, time.January, 10)}, want: date(2024, time.April, 10)},
		{name: "time of day ignored", event: model.Event{StartDate: time.Date(2024, time.January, 10, 17, 45, 0, 0, time.UTC)}, want: date(2024, time.April, 10)},
		{name: "month overflow normalizes", event: model.Event{StartDate: date(2023, time.November, 30)}, want: date(2024, time.March, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AnnualAvailableOn(tc.event))
		})
	}
}

func TestCheckAnnualAvailability(t *testing.T) {
	event := model.Event{StartDate: date(2024, time.March, 1)}

	t.Run("boundary day is allowed", func(t *testing.T) {
		assert.NoError(t, CheckAnnualAvailability(event, time.Date(2024, time.June, 1, 0, 0, 1, 0, time.UTC)))
	})

	t.Run("after the boundary", func(t *testing.T) {
		assert.NoError(t, CheckAnnualAvailability(event, date(2025, time.January, 1)))
	})

	t.Run("day before is gated", func(t *testing.T) {
		err := CheckAnnualAvailability(event, time.Date(2024, time.May, 31, 23, 59, 0, 0, time.UTC))
		var gate *apperror.NotYetAvailableError
		require.True(t, errors.As(err, &gate))
		assert.Equal(t, 0, gate.Months)
		assert.Equal(t, 1, gate.Days)
		assert.Equal(t, date(2024, time.June, 1), gate.AvailableOn)
	})

	t.Run("countdown in months and days", func(t *testing.T) {
		err := CheckAnnualAvailability(event, date(2024, time.March, 11))
		var gate *apperror.NotYetAvailableError
		require.True(t, errors.As(err, &gate))
		assert.Equal(t, 2, gate.Months)
		assert.Equal(t, 21, gate.Days)
		assert.Contains(t, gate.Error(), "2 months and 21 days")
	})
}
