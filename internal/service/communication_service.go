package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scintranet/staff-api/internal/dto"
	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

type communicationRepository interface {
	List(ctx context.Context) ([]models.Communication, error)
	Create(ctx context.Context, comm *models.Communication) error
	Update(ctx context.Context, comm *models.Communication) error
	Delete(ctx context.Context, id int64) error
}

// CreateCommunicationRequest describes the announcement form. Priority
// defaults to medium when omitted.
type CreateCommunicationRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Priority string `json:"priority" validate:"omitempty,oneof=high medium low"`
	Date     string `json:"date"`
}

// UpdateCommunicationRequest describes the announcement edit form.
type UpdateCommunicationRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Priority string `json:"priority" validate:"omitempty,oneof=high medium low"`
	Date     string `json:"date" validate:"required"`
}

// CommunicationService orchestrates announcement CRUD with the
// reload-after-mutation policy.
type CommunicationService struct {
	repo      communicationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCommunicationService constructs the service.
func NewCommunicationService(repo communicationRepository, validate *validator.Validate, logger *zap.Logger) *CommunicationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommunicationService{repo: repo, validator: validate, logger: logger}
}

// List returns all announcements mapped for display, newest date first.
func (s *CommunicationService) List(ctx context.Context) ([]dto.CommunicationView, error) {
	comms, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list communications")
	}
	return dto.MapCommunications(comms), nil
}

// Create publishes a new announcement and returns the reloaded collection.
func (s *CommunicationService) Create(ctx context.Context, req CreateCommunicationRequest) ([]dto.CommunicationView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid communication payload")
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		return nil, err
	}

	comm := &models.Communication{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		Priority: priorityOrDefault(req.Priority),
		Date:     date,
	}
	if err := s.repo.Create(ctx, comm); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create communication")
	}
	return s.List(ctx)
}

// Update modifies an announcement and returns the reloaded collection.
func (s *CommunicationService) Update(ctx context.Context, id int64, req UpdateCommunicationRequest) ([]dto.CommunicationView, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "communication id is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid communication payload")
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		return nil, err
	}

	comm := &models.Communication{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		Priority: priorityOrDefault(req.Priority),
		Date:     date,
	}
	if err := s.repo.Update(ctx, comm); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update communication")
	}
	return s.List(ctx)
}

// Delete removes an announcement and returns the reloaded collection.
func (s *CommunicationService) Delete(ctx context.Context, id int64) ([]dto.CommunicationView, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete communication")
	}
	return s.List(ctx)
}

func priorityOrDefault(raw string) models.Priority {
	if raw == "" {
		return models.PriorityMedium
	}
	return models.Priority(raw)
}
