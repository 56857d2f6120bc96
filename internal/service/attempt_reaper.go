package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maxty9378/paneldoirp-sub002/config"
	"github.com/maxty9378/paneldoirp-sub002/internal/metrics"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"github.com/maxty9378/paneldoirp-sub002/internal/repository"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AttemptReaper fails in_progress attempts whose time limit ran out more than
// the grace period ago.
type AttemptReaper struct {
	attemptRepo repository.TestAttemptRepository
	metrics     *metrics.Metrics
	now         Clock
	schedule    string
	grace       time.Duration
	cron        *cron.Cron
}

func NewAttemptReaper(cfg *config.Config, attemptRepo repository.TestAttemptRepository, m *metrics.Metrics, clock Clock) *AttemptReaper {
	return &AttemptReaper{
		attemptRepo: attemptRepo,
		metrics:     m,
		now:         clock,
		schedule:    cfg.Reaper.Schedule,
		grace:       cfg.Reaper.Grace,
	}
}

// Start schedules Reap. A run still in progress makes the next tick skip.
func (r *AttemptReaper) Start() error {
	logger := cronLogger{log.With().Str("component", "attempt-reaper").Logger()}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(logger)), cron.WithLogger(logger))
	_, err := c.AddFunc(r.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := r.Reap(ctx); err != nil {
			log.Error().Err(err).Msg("Attempt reaper run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid reaper schedule %q: %w", r.schedule, err)
	}
	r.cron = c
	c.Start()
	log.Info().Str("schedule", r.schedule).Dur("grace", r.grace).Msg("Attempt reaper started")
	return nil
}

// Stop waits for a running Reap to finish or ctx to expire.
func (r *AttemptReaper) Stop(ctx context.Context) error {
	if r.cron == nil {
		return nil
	}
	select {
	case <-r.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reap fails every expired attempt and reports how many it changed.
func (r *AttemptReaper) Reap(ctx context.Context) (int, error) {
	candidates, err := r.attemptRepo.FindInProgressWithTimeLimit(ctx)
	if err != nil {
		return 0, fmt.Errorf("load in-progress attempts: %w", err)
	}
	now := r.now()
	reaped := 0
	for _, c := range candidates {
		deadline := c.Deadline()
		if now.Before(deadline.Add(r.grace)) {
			continue
		}
		finished, err := r.attemptRepo.Finish(ctx, c.ID, model.AttemptFailed, nil, deadline)
		if err != nil {
			return reaped, fmt.Errorf("fail attempt %s: %w", c.ID, err)
		}
		if finished {
			reaped++
			r.metrics.AttemptsReaped.Inc()
			r.metrics.AttemptsFinished.WithLabelValues(string(model.AttemptFailed)).Inc()
			log.Info().Str("attemptID", c.ID.String()).Time("deadline", deadline).Msg("Expired attempt marked failed")
		}
	}
	return reaped, nil
}

// cronLogger routes robfig/cron messages to zerolog.
type cronLogger struct {
	l zerolog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug().Fields(keysAndValues).Msg(msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
