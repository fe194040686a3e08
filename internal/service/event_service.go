package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scintranet/staff-api/internal/dto"
	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

// publicCalendarCacheKey caches the unauthenticated calendar payload.
const publicCalendarCacheKey = "public:calendar:events"

type eventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// CreateEventRequest describes the event creation form. Missing text fields
// default to empty strings, a missing date defaults to today, and a missing
// attendee count defaults to zero.
type CreateEventRequest struct {
	Title     string `json:"title" validate:"required"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Organizer string `json:"organizer"`
	Category  string `json:"category"`
	Attendees int    `json:"attendees" validate:"gte=0"`
	CreatedBy string `json:"-"`
}

// UpdateEventRequest describes the event edit form.
type UpdateEventRequest struct {
	Title     string `json:"title" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Organizer string `json:"organizer"`
	Category  string `json:"category"`
	Attendees int    `json:"attendees" validate:"gte=0"`
}

// EventService orchestrates event CRUD. Every mutation is followed by a full
// reload so derived join fields such as the owner name stay correct, and the
// public calendar cache is invalidated.
type EventService struct {
	repo      eventRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(repo eventRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns all events mapped for display, newest date first.
func (s *EventService) List(ctx context.Context) ([]dto.EventView, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	return dto.MapEvents(events), nil
}

// PublicCalendar returns the mapped events for the unauthenticated calendar,
// served from cache when possible.
func (s *EventService) PublicCalendar(ctx context.Context) ([]dto.EventView, error) {
	var cached []dto.EventView
	if hit, _ := s.cache.Get(ctx, publicCalendarCacheKey, &cached); hit {
		return cached, nil
	}

	views, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, publicCalendarCacheKey, views)
	return views, nil
}

// Create inserts a new event and returns the reloaded collection.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) ([]dto.EventView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:     req.Title,
		Date:      date,
		Time:      req.Time,
		Location:  req.Location,
		Organizer: req.Organizer,
		Category:  req.Category,
		Attendees: req.Attendees,
	}
	if req.CreatedBy != "" {
		createdBy := req.CreatedBy
		event.CreatedBy = &createdBy
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}

	s.cache.Invalidate(ctx, publicCalendarCacheKey)
	return s.List(ctx)
}

// Update modifies an event by identifier and returns the reloaded collection.
func (s *EventService) Update(ctx context.Context, id int64, req UpdateEventRequest) ([]dto.EventView, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "event id is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:        id,
		Title:     req.Title,
		Date:      date,
		Time:      req.Time,
		Location:  req.Location,
		Organizer: req.Organizer,
		Category:  req.Category,
		Attendees: req.Attendees,
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}

	s.cache.Invalidate(ctx, publicCalendarCacheKey)
	return s.List(ctx)
}

// Delete removes an event by identifier and returns the reloaded collection.
func (s *EventService) Delete(ctx context.Context, id int64) ([]dto.EventView, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}

	s.cache.Invalidate(ctx, publicCalendarCacheKey)
	return s.List(ctx)
}
