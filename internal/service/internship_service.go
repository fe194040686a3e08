package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scintranet/staff-api/internal/dto"
	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

type internshipRepository interface {
	List(ctx context.Context) ([]models.Internship, error)
	Create(ctx context.Context, internship *models.Internship) error
	Update(ctx context.Context, internship *models.Internship) error
	Delete(ctx context.Context, id int64) error
}

// InternshipRequest describes the internship form, shared between create and
// update. Status defaults to pending when omitted.
type InternshipRequest struct {
	Company    string `json:"company" validate:"required"`
	Position   string `json:"position"`
	Student    string `json:"student" validate:"required"`
	Supervisor string `json:"supervisor"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Status     string `json:"status" validate:"omitempty,oneof=pending active completed"`
}

// InternshipService orchestrates internship placement CRUD.
type InternshipService struct {
	repo      internshipRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInternshipService constructs the service.
func NewInternshipService(repo internshipRepository, validate *validator.Validate, logger *zap.Logger) *InternshipService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InternshipService{repo: repo, validator: validate, logger: logger}
}

// List returns all internships mapped for display, newest start date first.
func (s *InternshipService) List(ctx context.Context) ([]dto.InternshipView, error) {
	internships, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list internships")
	}
	return dto.MapInternships(internships), nil
}

// Create registers a new internship and returns the reloaded collection.
func (s *InternshipService) Create(ctx context.Context, req InternshipRequest) ([]dto.InternshipView, error) {
	internship, err := s.buildInternship(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, internship); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create internship")
	}
	return s.List(ctx)
}

// Update modifies an internship and returns the reloaded collection.
func (s *InternshipService) Update(ctx context.Context, id int64, req InternshipRequest) ([]dto.InternshipView, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "internship id is required")
	}
	internship, err := s.buildInternship(req)
	if err != nil {
		return nil, err
	}
	internship.ID = id
	if err := s.repo.Update(ctx, internship); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update internship")
	}
	return s.List(ctx)
}

// Delete removes an internship and returns the reloaded collection.
func (s *InternshipService) Delete(ctx context.Context, id int64) ([]dto.InternshipView, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete internship")
	}
	return s.List(ctx)
}

func (s *InternshipService) buildInternship(req InternshipRequest) (*models.Internship, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid internship payload")
	}

	startDate, err := parseDateOrToday(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDateOrToday(req.EndDate)
	if err != nil {
		return nil, err
	}

	status := models.InternshipStatusPending
	if req.Status != "" {
		status = models.InternshipStatus(req.Status)
	}

	return &models.Internship{
		Company:    req.Company,
		Position:   req.Position,
		Student:    req.Student,
		Supervisor: req.Supervisor,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     status,
	}, nil
}
