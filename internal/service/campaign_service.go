package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scintranet/staff-api/internal/dto"
	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
	"github.com/scintranet/staff-api/pkg/export"
)

type campaignRepository interface {
	List(ctx context.Context) ([]models.Campaign, error)
	Create(ctx context.Context, campaign *models.Campaign) error
	Update(ctx context.Context, campaign *models.Campaign) error
	Delete(ctx context.Context, id int64) error
}

// CampaignRequest describes the campaign form, shared between create and
// update. Status defaults to active when omitted.
type CampaignRequest struct {
	Name      string  `json:"name" validate:"required"`
	Platform  string  `json:"platform"`
	Budget    float64 `json:"budget" validate:"gte=0"`
	Spent     float64 `json:"spent" validate:"gte=0"`
	Leads     int     `json:"leads" validate:"gte=0"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Status    string  `json:"status" validate:"omitempty,oneof=active paused completed"`
}

// CampaignService orchestrates admissions campaign CRUD and tabular exports.
type CampaignService struct {
	repo      campaignRepository
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCampaignService constructs the service.
func NewCampaignService(repo campaignRepository, csv *export.CSVExporter, pdf *export.PDFExporter, validate *validator.Validate, logger *zap.Logger) *CampaignService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignService{repo: repo, csv: csv, pdf: pdf, validator: validate, logger: logger}
}

// List returns all campaigns mapped for display, newest start date first.
func (s *CampaignService) List(ctx context.Context) ([]dto.CampaignView, error) {
	campaigns, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list campaigns")
	}
	return dto.MapCampaigns(campaigns), nil
}

// Create registers a new campaign and returns the reloaded collection.
func (s *CampaignService) Create(ctx context.Context, req CampaignRequest) ([]dto.CampaignView, error) {
	campaign, err := s.buildCampaign(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, campaign); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create campaign")
	}
	return s.List(ctx)
}

// Update modifies a campaign and returns the reloaded collection.
func (s *CampaignService) Update(ctx context.Context, id int64, req CampaignRequest) ([]dto.CampaignView, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "campaign id is required")
	}
	campaign, err := s.buildCampaign(req)
	if err != nil {
		return nil, err
	}
	campaign.ID = id
	if err := s.repo.Update(ctx, campaign); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update campaign")
	}
	return s.List(ctx)
}

// Delete removes a campaign and returns the reloaded collection.
func (s *CampaignService) Delete(ctx context.Context, id int64) ([]dto.CampaignView, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete campaign")
	}
	return s.List(ctx)
}

// Export renders the campaign table as csv or pdf.
func (s *CampaignService) Export(ctx context.Context, format string) ([]byte, string, error) {
	views, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Name", "Platform", "Budget", "Spent", "Leads", "Cost Per Lead", "Start Date", "End Date", "Status"},
	}
	for _, v := range views {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Name":          v.Name,
			"Platform":      v.Platform,
			"Budget":        strconv.FormatFloat(v.Budget, 'f', 2, 64),
			"Spent":         strconv.FormatFloat(v.Spent, 'f', 2, 64),
			"Leads":         strconv.Itoa(v.Leads),
			"Cost Per Lead": strconv.FormatFloat(v.CostPerLead, 'f', 2, 64),
			"Start Date":    v.StartDate,
			"End Date":      v.EndDate,
			"Status":        v.Status,
		})
	}

	switch format {
	case "csv":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to export campaigns")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := s.pdf.Render(dataset, "Admissions Campaigns")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to export campaigns")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format: %s", format))
	}
}

func (s *CampaignService) buildCampaign(req CampaignRequest) (*models.Campaign, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid campaign payload")
	}

	startDate, err := parseDateOrToday(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDateOrToday(req.EndDate)
	if err != nil {
		return nil, err
	}

	status := models.CampaignStatusActive
	if req.Status != "" {
		status = models.CampaignStatus(req.Status)
	}

	return &models.Campaign{
		Name:      req.Name,
		Platform:  req.Platform,
		Budget:    req.Budget,
		Spent:     req.Spent,
		Leads:     req.Leads,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
	}, nil
}
