// Package apperror defines the error kinds surfaced by the portal services.
// Controllers translate them to HTTP responses with errors.As / errors.Is.
package apperror

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)

// NotFound wraps ErrNotFound with the missing entity.
func NotFound(entity string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}

// Conflict wraps ErrConflict with a human readable reason.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}

// ValidationError lists every rule a test definition violates. It blocks saving.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// OrNil returns nil when nothing was recorded, so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Problems) == 0 {
		return nil
	}
	return e
}

// AlreadyCompletedError is returned when the user already has a scored attempt
// for the same test and event.
type AlreadyCompletedError struct {
	AttemptID uuid.UUID
	Score     int
}

func (e *AlreadyCompletedError) Error() string {
	return fmt.Sprintf("test already passed, score %d%%", e.Score)
}

// NotYetAvailableError gates annual tests until their window opens.
type NotYetAvailableError struct {
	AvailableOn time.Time
	Months      int
	Days        int
}

func (e *NotYetAvailableError) Error() string {
	return fmt.Sprintf("test not available yet: available in %s (on %s)",
		Countdown(e.Months, e.Days), e.AvailableOn.Format(time.DateOnly))
}

// Countdown renders "N months and M days", dropping a zero part.
func Countdown(months, days int) string {
	switch {
	case months > 0 && days > 0:
		return fmt.Sprintf("%s and %s", plural(months, "month"), plural(days, "day"))
	case months > 0:
		return plural(months, "month")
	default:
		return plural(days, "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// PersistenceError wraps any failed read or write against the database.
// It is always retryable from the caller's point of view.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// ScoringInconsistencyError describes a submission that references data the
// question does not have. Scoring treats it as incorrect; it is only logged.
type ScoringInconsistencyError struct {
	QuestionID uuid.UUID
	OptionID   uuid.UUID
	Reason     string
}

func (e *ScoringInconsistencyError) Error() string {
	if e.OptionID != uuid.Nil {
		return fmt.Sprintf("question %s: option %s %s", e.QuestionID, e.OptionID, e.Reason)
	}
	return fmt.Sprintf("question %s: %s", e.QuestionID, e.Reason)
}

// InvalidTransitionError reports a forbidden attempt status change.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("attempt cannot move from %s to %s", e.From, e.To)
}
