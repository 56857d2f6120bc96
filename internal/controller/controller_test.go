package controller

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	verr := &apperror.ValidationError{}
	verr.Add("title is required")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: verr, want: http.StatusBadRequest},
		{name: "already completed", err: &apperror.AlreadyCompletedError{Score: 80}, want: http.StatusConflict},
		{name: "not yet available", err: &apperror.NotYetAvailableError{AvailableOn: time.Now(), Months: 1}, want: http.StatusLocked},
		{name: "invalid transition", err: &apperror.InvalidTransitionError{From: "completed", To: "failed"}, want: http.StatusConflict},
		{name: "not found", err: apperror.NotFound("test", uuid.New()), want: http.StatusNotFound},
		{name: "forbidden", err: fmt.Errorf("nope: %w", apperror.ErrForbidden), want: http.StatusForbidden},
		{name: "conflict", err: apperror.Conflict("test is draft"), want: http.StatusConflict},
		{name: "persistence", err: apperror.Persistence("save", errors.New("connection reset")), want: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := StatusFor(tc.err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatusFor_Bodies(t *testing.T) {
	_, body := StatusFor(&apperror.AlreadyCompletedError{Score: 80})
	require.NotNil(t, body.Score)
	assert.Equal(t, 80, *body.Score)

	on := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	_, body = StatusFor(&apperror.NotYetAvailableError{AvailableOn: on, Months: 2, Days: 1})
	assert.Equal(t, "2025-03-01", body.AvailableOn)
	assert.Equal(t, "2 months and 1 day", body.Countdown)

	_, body = StatusFor(apperror.Persistence("save", errors.New("timeout")))
	assert.True(t, body.Retryable)
	assert.NotContains(t, body.Message, "timeout")
}
