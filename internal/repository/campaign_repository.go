package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/scintranet/staff-api/internal/models"
)

// CampaignRepository provides persistence for admissions campaigns.
type CampaignRepository struct {
	db *sqlx.DB
}

// NewCampaignRepository creates the repository.
func NewCampaignRepository(db *sqlx.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// List returns all campaigns ordered by start date descending.
func (r *CampaignRepository) List(ctx context.Context) ([]models.Campaign, error) {
	const query = `SELECT id, name, platform, budget, spent, leads, start_date, end_date, status, created_at, updated_at FROM campaigns ORDER BY start_date DESC, id DESC`
	var campaigns []models.Campaign
	if err := r.db.SelectContext(ctx, &campaigns, query); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// Create inserts a new campaign and assigns the generated id.
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	now := time.Now().UTC()
	if campaign.CreatedAt.IsZero() {
		campaign.CreatedAt = now
	}
	campaign.UpdatedAt = now

	const query = `INSERT INTO campaigns (name, platform, budget, spent, leads, start_date, end_date, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		campaign.Name, campaign.Platform, campaign.Budget, campaign.Spent, campaign.Leads,
		campaign.StartDate, campaign.EndDate, campaign.Status,
		campaign.CreatedAt, campaign.UpdatedAt,
	).Scan(&campaign.ID); err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	return nil
}

// Update modifies an existing campaign matching on identifier.
func (r *CampaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	campaign.UpdatedAt = time.Now().UTC()
	const query = `UPDATE campaigns SET name = :name, platform = :platform, budget = :budget, spent = :spent, leads = :leads, start_date = :start_date, end_date = :end_date, status = :status, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, campaign); err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}

// Delete removes a campaign by identifier.
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM campaigns WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	return nil
}
