package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/scintranet/staff-api/internal/models"
)

// SeedRepository performs idempotent demo-data upserts and table inspection
// for the operational endpoints. Writes match on explicit ids so reseeding
// never duplicates rows.
type SeedRepository struct {
	db *sqlx.DB
}

// NewSeedRepository creates the repository.
func NewSeedRepository(db *sqlx.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

// CountRows returns the row count for a table. Callers pass trusted table
// names only; the seed service keeps the whitelist.
func (r *SeedRepository) CountRows(ctx context.Context, table string) (int, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count rows in %s: %w", table, err)
	}
	return count, nil
}

// SyncSequence advances a table's id sequence past the highest present id.
// Seed writes insert explicit ids, which leaves a fresh bigserial sequence
// behind them; without this, the next plain INSERT draws a colliding id.
func (r *SeedRepository) SyncSequence(ctx context.Context, table string) error {
	query := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), GREATEST((SELECT COALESCE(MAX(id), 1) FROM %s), 1))",
		table, table,
	)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("sync id sequence for %s: %w", table, err)
	}
	return nil
}

// UpsertEvent writes a demo event with a fixed id.
func (r *SeedRepository) UpsertEvent(ctx context.Context, event models.Event) error {
	const query = `INSERT INTO events (id, title, date, time, location, organizer, category, attendees, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title, date = EXCLUDED.date, time = EXCLUDED.time,
	location = EXCLUDED.location, organizer = EXCLUDED.organizer,
	category = EXCLUDED.category, attendees = EXCLUDED.attendees,
	updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query,
		event.ID, event.Title, event.Date, event.Time, event.Location,
		event.Organizer, event.Category, event.Attendees, event.CreatedBy, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("seed event %d: %w", event.ID, err)
	}
	return nil
}

// UpsertCommunication writes a demo communication with a fixed id.
func (r *SeedRepository) UpsertCommunication(ctx context.Context, comm models.Communication) error {
	const query = `INSERT INTO communications (id, title, content, author, category, priority, date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title, content = EXCLUDED.content, author = EXCLUDED.author,
	category = EXCLUDED.category, priority = EXCLUDED.priority, date = EXCLUDED.date,
	updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query,
		comm.ID, comm.Title, comm.Content, comm.Author, comm.Category,
		comm.Priority, comm.Date, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("seed communication %d: %w", comm.ID, err)
	}
	return nil
}

// UpsertInternship writes a demo internship with a fixed id.
func (r *SeedRepository) UpsertInternship(ctx context.Context, internship models.Internship) error {
	const query = `INSERT INTO internships (id, company, position, student, supervisor, start_date, end_date, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
ON CONFLICT (id) DO UPDATE SET
	company = EXCLUDED.company, position = EXCLUDED.position, student = EXCLUDED.student,
	supervisor = EXCLUDED.supervisor, start_date = EXCLUDED.start_date,
	end_date = EXCLUDED.end_date, status = EXCLUDED.status,
	updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query,
		internship.ID, internship.Company, internship.Position, internship.Student,
		internship.Supervisor, internship.StartDate, internship.EndDate, internship.Status,
		time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("seed internship %d: %w", internship.ID, err)
	}
	return nil
}

// UpsertCampaign writes a demo campaign with a fixed id.
func (r *SeedRepository) UpsertCampaign(ctx context.Context, campaign models.Campaign) error {
	const query = `INSERT INTO campaigns (id, name, platform, budget, spent, leads, start_date, end_date, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name, platform = EXCLUDED.platform, budget = EXCLUDED.budget,
	spent = EXCLUDED.spent, leads = EXCLUDED.leads, start_date = EXCLUDED.start_date,
	end_date = EXCLUDED.end_date, status = EXCLUDED.status,
	updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query,
		campaign.ID, campaign.Name, campaign.Platform, campaign.Budget, campaign.Spent,
		campaign.Leads, campaign.StartDate, campaign.EndDate, campaign.Status, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("seed campaign %d: %w", campaign.ID, err)
	}
	return nil
}

// UpsertMilestone writes a demo milestone with a fixed id.
func (r *SeedRepository) UpsertMilestone(ctx context.Context, milestone models.Milestone) error {
	const query = `INSERT INTO milestones (id, title, target_date, is_completed, campaign_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title, target_date = EXCLUDED.target_date,
	is_completed = EXCLUDED.is_completed, campaign_id = EXCLUDED.campaign_id,
	updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query,
		milestone.ID, milestone.Title, milestone.TargetDate, milestone.IsCompleted,
		milestone.CampaignID, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("seed milestone %d: %w", milestone.ID, err)
	}
	return nil
}

// UpsertAdmissionsMetric writes the demo admissions counters.
func (r *SeedRepository) UpsertAdmissionsMetric(ctx context.Context, metric models.AdmissionsMetric) error {
	const query = `INSERT INTO admissions_metrics (id, total_applicants, target_applicants, accepted_students, target_acceptance, confirmed_enrollments, target_enrollments, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
	total_applicants = EXCLUDED.total_applicants,
	target_applicants = EXCLUDED.target_applicants,
	accepted_students = EXCLUDED.accepted_students,
	target_acceptance = EXCLUDED.target_acceptance,
	confirmed_enrollments = EXCLUDED.confirmed_enrollments,
	target_enrollments = EXCLUDED.target_enrollments,
	updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query,
		metric.ID, metric.TotalApplicants, metric.TargetApplicants, metric.AcceptedStudents,
		metric.TargetAcceptance, metric.ConfirmedEnrollments, metric.TargetEnrollments,
		time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("seed admissions metrics: %w", err)
	}
	return nil
}
