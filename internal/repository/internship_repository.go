package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/scintranet/staff-api/internal/models"
)

// InternshipRepository provides persistence for internship placements.
type InternshipRepository struct {
	db *sqlx.DB
}

// NewInternshipRepository creates the repository.
func NewInternshipRepository(db *sqlx.DB) *InternshipRepository {
	return &InternshipRepository{db: db}
}

// List returns all internships ordered by start date descending.
func (r *InternshipRepository) List(ctx context.Context) ([]models.Internship, error) {
	const query = `SELECT id, company, position, student, supervisor, start_date, end_date, status, created_at, updated_at FROM internships ORDER BY start_date DESC, id DESC`
	var internships []models.Internship
	if err := r.db.SelectContext(ctx, &internships, query); err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}
	return internships, nil
}

// Create inserts a new internship and assigns the generated id.
func (r *InternshipRepository) Create(ctx context.Context, internship *models.Internship) error {
	now := time.Now().UTC()
	if internship.CreatedAt.IsZero() {
		internship.CreatedAt = now
	}
	internship.UpdatedAt = now

	const query = `INSERT INTO internships (company, position, student, supervisor, start_date, end_date, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		internship.Company, internship.Position, internship.Student, internship.Supervisor,
		internship.StartDate, internship.EndDate, internship.Status,
		internship.CreatedAt, internship.UpdatedAt,
	).Scan(&internship.ID); err != nil {
		return fmt.Errorf("create internship: %w", err)
	}
	return nil
}

// Update modifies an existing internship matching on identifier.
func (r *InternshipRepository) Update(ctx context.Context, internship *models.Internship) error {
	internship.UpdatedAt = time.Now().UTC()
	const query = `UPDATE internships SET company = :company, position = :position, student = :student, supervisor = :supervisor, start_date = :start_date, end_date = :end_date, status = :status, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, internship); err != nil {
		return fmt.Errorf("update internship: %w", err)
	}
	return nil
}

// Delete removes an internship by identifier.
func (r *InternshipRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM internships WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete internship: %w", err)
	}
	return nil
}
