package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/scintranet/staff-api/internal/models"
)

// MilestoneRepository provides persistence for admissions milestones.
type MilestoneRepository struct {
	db *sqlx.DB
}

// NewMilestoneRepository creates the repository.
func NewMilestoneRepository(db *sqlx.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

// List returns all milestones ordered by target date ascending.
func (r *MilestoneRepository) List(ctx context.Context) ([]models.Milestone, error) {
	const query = `SELECT id, title, target_date, is_completed, campaign_id, created_at, updated_at FROM milestones ORDER BY target_date ASC, id ASC`
	var milestones []models.Milestone
	if err := r.db.SelectContext(ctx, &milestones, query); err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	return milestones, nil
}

// Create inserts a new milestone and assigns the generated id.
func (r *MilestoneRepository) Create(ctx context.Context, milestone *models.Milestone) error {
	now := time.Now().UTC()
	if milestone.CreatedAt.IsZero() {
		milestone.CreatedAt = now
	}
	milestone.UpdatedAt = now

	const query = `INSERT INTO milestones (title, target_date, is_completed, campaign_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		milestone.Title, milestone.TargetDate, milestone.IsCompleted, milestone.CampaignID,
		milestone.CreatedAt, milestone.UpdatedAt,
	).Scan(&milestone.ID); err != nil {
		return fmt.Errorf("create milestone: %w", err)
	}
	return nil
}

// Update modifies an existing milestone matching on identifier.
func (r *MilestoneRepository) Update(ctx context.Context, milestone *models.Milestone) error {
	milestone.UpdatedAt = time.Now().UTC()
	const query = `UPDATE milestones SET title = :title, target_date = :target_date, is_completed = :is_completed, campaign_id = :campaign_id, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, milestone); err != nil {
		return fmt.Errorf("update milestone: %w", err)
	}
	return nil
}

// SetCompleted flips only the completion flag.
func (r *MilestoneRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	const query = `UPDATE milestones SET is_completed = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, completed, time.Now().UTC()); err != nil {
		return fmt.Errorf("set milestone completed: %w", err)
	}
	return nil
}

// Delete removes a milestone by identifier.
func (r *MilestoneRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM milestones WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete milestone: %w", err)
	}
	return nil
}
