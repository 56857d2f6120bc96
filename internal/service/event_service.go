package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/access"
	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"github.com/maxty9378/paneldoirp-sub002/internal/cache"
	"github.com/maxty9378/paneldoirp-sub002/internal/dto"
	"github.com/maxty9378/paneldoirp-sub002/internal/metrics"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"github.com/maxty9378/paneldoirp-sub002/internal/repository"
	"github.com/rs/zerolog/log"
)

type EventService interface {
	// ListForUser returns the events the viewer may see, with statistics
	// only for roles allowed to see them. Results are cached per viewer and role.
	ListForUser(ctx context.Context, userID uuid.UUID, role access.Role) ([]model.EventWithStats, error)
	GetEvent(ctx context.Context, eventID, userID uuid.UUID, role access.Role) (*model.EventWithStats, error)
	CreateEvent(ctx context.Context, creatorID uuid.UUID, req dto.EventCreateRequest) (*model.EventWithStats, error)
	AddParticipant(ctx context.Context, eventID, userID uuid.UUID) error
	// Invalidate drops every cached listing.
	Invalidate()
}

type eventService struct {
	eventRepo repository.EventRepository
	cache     *cache.EventCache
	metrics   *metrics.Metrics
}

func NewEventService(eventRepo repository.EventRepository, eventCache *cache.EventCache, m *metrics.Metrics) EventService {
	return &eventService{eventRepo: eventRepo, cache: eventCache, metrics: m}
}

func scopeFor(userID uuid.UUID, caps access.Capabilities) repository.EventScope {
	switch {
	case caps.CanSeeAllEvents:
		return repository.EventScope{}
	case caps.CanCreateEvents:
		return repository.EventScope{ParticipantID: &userID, OrCreatedBy: true}
	default:
		return repository.EventScope{ParticipantID: &userID}
	}
}

func (s *eventService) ListForUser(ctx context.Context, userID uuid.UUID, role access.Role) ([]model.EventWithStats, error) {
	if cached, ok := s.cache.Get(userID, role); ok {
		s.metrics.EventCache.WithLabelValues("hit").Inc()
		return cached, nil
	}
	s.metrics.EventCache.WithLabelValues("miss").Inc()

	caps := access.CapabilitiesFor(role)
	events, err := s.eventRepo.FindAll(ctx, scopeFor(userID, caps))
	if err != nil {
		log.Error().Err(err).Str("userID", userID.String()).Str("role", string(role)).Msg("Failed to list events")
		return nil, apperror.Persistence("list events", err)
	}
	out, err := s.withStats(ctx, events, caps)
	if err != nil {
		return nil, err
	}
	s.cache.Set(userID, role, out)
	return out, nil
}

func (s *eventService) withStats(ctx context.Context, events []model.Event, caps access.Capabilities) ([]model.EventWithStats, error) {
	var stats map[uuid.UUID]model.EventStats
	if caps.CanSeeStats {
		var err error
		stats, err = s.eventRepo.Stats(ctx, events)
		if err != nil {
			log.Error().Err(err).Msg("Failed to compute event statistics")
			return nil, apperror.Persistence("event statistics", err)
		}
	}
	out := make([]model.EventWithStats, 0, len(events))
	for _, e := range events {
		var st *model.EventStats
		if v, ok := stats[e.ID]; ok {
			st = &v
		}
		out = append(out, model.NewEventWithStats(e, st))
	}
	return out, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID, userID uuid.UUID, role access.Role) (*model.EventWithStats, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, storeError("load event", "event", eventID, err)
	}
	caps := access.CapabilitiesFor(role)
	if !caps.CanSeeAllEvents && !(caps.CanCreateEvents && event.CreatedBy == userID) {
		ok, err := s.eventRepo.IsParticipant(ctx, eventID, userID)
		if err != nil {
			return nil, apperror.Persistence("check participant", err)
		}
		if !ok {
			return nil, fmt.Errorf("event %s: %w", eventID, apperror.ErrForbidden)
		}
	}
	out, err := s.withStats(ctx, []model.Event{*event}, caps)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *eventService) CreateEvent(ctx context.Context, creatorID uuid.UUID, req dto.EventCreateRequest) (*model.EventWithStats, error) {
	verr := &apperror.ValidationError{}
	if strings.TrimSpace(req.Title) == "" {
		verr.Add("title is required")
	}
	if req.StartDate.IsZero() {
		verr.Add("start date is required")
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		verr.Add("end date cannot be before start date")
	}
	status := model.EventStatus(req.Status)
	if status == "" {
		status = model.EventPlanned
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		EventTypeID: req.EventTypeID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      status,
		CreatedBy:   creatorID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create event")
		return nil, apperror.Persistence("create event", err)
	}
	s.Invalidate()
	log.Info().Str("eventID", event.ID.String()).Msg("Event created")
	out := model.NewEventWithStats(*event, nil)
	return &out, nil
}

func (s *eventService) AddParticipant(ctx context.Context, eventID, userID uuid.UUID) error {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return storeError("load event", "event", eventID, err)
	}
	if err := s.eventRepo.AddParticipant(ctx, eventID, userID); err != nil {
		log.Error().Err(err).Str("eventID", eventID.String()).Str("userID", userID.String()).Msg("Failed to add participant")
		return apperror.Persistence("add participant", err)
	}
	s.Invalidate()
	return nil
}

func (s *eventService) Invalidate() {
	s.cache.Invalidate()
	log.Debug().Msg("Event listing cache invalidated")
}
