package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"gorm.io/gorm"
)

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

func SystemClock() Clock { return time.Now }

// storeError turns a repository error into an apperror kind: missing rows
// become not found, everything else is a retryable persistence failure.
func storeError(op, entity string, id uuid.UUID, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(entity, id)
	}
	return apperror.Persistence(op, err)
}

// passThrough keeps errors that already carry an apperror kind and wraps the rest.
func passThrough(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		verr *apperror.ValidationError
		perr *apperror.PersistenceError
		done *apperror.AlreadyCompletedError
		gate *apperror.NotYetAvailableError
		tran *apperror.InvalidTransitionError
	)
	switch {
	case errors.Is(err, apperror.ErrNotFound),
		errors.Is(err, apperror.ErrForbidden),
		errors.Is(err, apperror.ErrConflict),
		errors.As(err, &verr),
		errors.As(err, &perr),
		errors.As(err, &done),
		errors.As(err, &gate),
		errors.As(err, &tran):
		return err
	}
	return apperror.Persistence(op, err)
}
