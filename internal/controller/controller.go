// Package controller holds what the admin and user controllers share: error
// translation and request parsing.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"github.com/maxty9378/paneldoirp-sub002/internal/dto"
	"github.com/rs/zerolog/log"
)

// StatusFor maps an apperror kind to its HTTP status and response body.
func StatusFor(err error) (int, dto.ErrorResponse) {
	var (
		verr *apperror.ValidationError
		done *apperror.AlreadyCompletedError
		gate *apperror.NotYetAvailableError
		perr *apperror.PersistenceError
		tran *apperror.InvalidTransitionError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: verr.Problems}
	case errors.As(err, &done):
		score := done.Score
		return http.StatusConflict, dto.ErrorResponse{Message: done.Error(), Score: &score}
	case errors.As(err, &gate):
		return http.StatusLocked, dto.ErrorResponse{
			Message:     gate.Error(),
			AvailableOn: gate.AvailableOn.Format(time.DateOnly),
			Countdown:   apperror.Countdown(gate.Months, gate.Days),
		}
	case errors.As(err, &tran):
		return http.StatusConflict, dto.ErrorResponse{Message: tran.Error()}
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound, dto.ErrorResponse{Message: err.Error()}
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden, dto.ErrorResponse{Message: err.Error()}
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict, dto.ErrorResponse{Message: err.Error()}
	case errors.As(err, &perr):
		return http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Storage is temporarily unavailable, please retry", Retryable: true}
	default:
		return http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"}
	}
}

// RespondError writes err as a JSON error response.
func RespondError(c *gin.Context, err error) {
	status, body := StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, body)
}

// BindFailed answers a request whose body or query did not bind.
func BindFailed(c *gin.Context, err error) {
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request")
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// UUIDParam parses a path parameter and answers 400 itself when it is malformed.
func UUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

// OptionalUUIDQuery parses an optional query parameter.
func OptionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return nil, false
	}
	return &id, true
}
