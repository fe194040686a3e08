package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scintranet/staff-api/internal/dto"
	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

type milestoneRepository interface {
	List(ctx context.Context) ([]models.Milestone, error)
	Create(ctx context.Context, milestone *models.Milestone) error
	Update(ctx context.Context, milestone *models.Milestone) error
	SetCompleted(ctx context.Context, id int64, completed bool) error
	Delete(ctx context.Context, id int64) error
}

// MilestoneRequest describes the milestone form, shared between create and
// update. CampaignID is optional.
type MilestoneRequest struct {
	Title      string `json:"title" validate:"required"`
	DueDate    string `json:"dueDate"`
	Completed  bool   `json:"completed"`
	CampaignID *int64 `json:"campaignId"`
}

// MilestoneService orchestrates milestone CRUD. Toggle is the exception to
// the reload-after-mutation policy: it flips the stored flag and returns the
// single patched view so checkbox interactions stay cheap.
type MilestoneService struct {
	repo      milestoneRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMilestoneService constructs the service.
func NewMilestoneService(repo milestoneRepository, validate *validator.Validate, logger *zap.Logger) *MilestoneService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MilestoneService{repo: repo, validator: validate, logger: logger}
}

// List returns all milestones mapped for display, earliest target first.
func (s *MilestoneService) List(ctx context.Context) ([]dto.MilestoneView, error) {
	milestones, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list milestones")
	}
	return dto.MapMilestones(milestones), nil
}

// Create registers a new milestone and returns the reloaded collection.
func (s *MilestoneService) Create(ctx context.Context, req MilestoneRequest) ([]dto.MilestoneView, error) {
	milestone, err := s.buildMilestone(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, milestone); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create milestone")
	}
	return s.List(ctx)
}

// Update modifies a milestone and returns the reloaded collection.
func (s *MilestoneService) Update(ctx context.Context, id int64, req MilestoneRequest) ([]dto.MilestoneView, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "milestone id is required")
	}
	milestone, err := s.buildMilestone(req)
	if err != nil {
		return nil, err
	}
	milestone.ID = id
	if err := s.repo.Update(ctx, milestone); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update milestone")
	}
	return s.List(ctx)
}

// Toggle sets the completion flag and returns the patched view.
func (s *MilestoneService) Toggle(ctx context.Context, id int64, completed bool) (*dto.MilestoneView, error) {
	if err := s.repo.SetCompleted(ctx, id, completed); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to toggle milestone")
	}
	milestones, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload milestones")
	}
	for _, m := range milestones {
		if m.ID == id {
			view := dto.MapMilestone(m)
			return &view, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "milestone not found")
}

// Delete removes a milestone and returns the reloaded collection.
func (s *MilestoneService) Delete(ctx context.Context, id int64) ([]dto.MilestoneView, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete milestone")
	}
	return s.List(ctx)
}

func (s *MilestoneService) buildMilestone(req MilestoneRequest) (*models.Milestone, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid milestone payload")
	}
	targetDate, err := parseDateOrToday(req.DueDate)
	if err != nil {
		return nil, err
	}
	return &models.Milestone{
		Title:       req.Title,
		TargetDate:  targetDate,
		IsCompleted: req.Completed,
		CampaignID:  req.CampaignID,
	}, nil
}
