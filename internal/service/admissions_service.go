package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

type admissionsRepository interface {
	List(ctx context.Context) ([]models.AdmissionsMetric, error)
	Upsert(ctx context.Context, metric *models.AdmissionsMetric) error
}

// AdmissionsMetricRequest carries the aggregate admissions counters.
type AdmissionsMetricRequest struct {
	ID                   int64 `json:"id" validate:"required,gt=0"`
	TotalApplicants      int   `json:"totalApplicants" validate:"gte=0"`
	TargetApplicants     int   `json:"targetApplicants" validate:"gte=0"`
	AcceptedStudents     int   `json:"acceptedStudents" validate:"gte=0"`
	TargetAcceptance     int   `json:"targetAcceptance" validate:"gte=0"`
	ConfirmedEnrollments int   `json:"confirmedEnrollments" validate:"gte=0"`
	TargetEnrollments    int   `json:"targetEnrollments" validate:"gte=0"`
}

// AdmissionsService maintains the aggregate admissions counters.
type AdmissionsService struct {
	repo      admissionsRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAdmissionsService constructs the service.
func NewAdmissionsService(repo admissionsRepository, validate *validator.Validate, logger *zap.Logger) *AdmissionsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdmissionsService{repo: repo, validator: validate, logger: logger}
}

// List returns the stored metric rows.
func (s *AdmissionsService) List(ctx context.Context) ([]models.AdmissionsMetric, error) {
	metrics, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list admissions metrics")
	}
	return metrics, nil
}

// Save upserts the counters and returns the reloaded rows.
func (s *AdmissionsService) Save(ctx context.Context, req AdmissionsMetricRequest) ([]models.AdmissionsMetric, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid admissions payload")
	}

	metric := &models.AdmissionsMetric{
		ID:                   req.ID,
		TotalApplicants:      req.TotalApplicants,
		TargetApplicants:     req.TargetApplicants,
		AcceptedStudents:     req.AcceptedStudents,
		TargetAcceptance:     req.TargetAcceptance,
		ConfirmedEnrollments: req.ConfirmedEnrollments,
		TargetEnrollments:    req.TargetEnrollments,
	}
	if err := s.repo.Upsert(ctx, metric); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save admissions metrics")
	}
	return s.List(ctx)
}
