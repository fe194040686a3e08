package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/scintranet/staff-api/internal/models"
)

// AdmissionsRepository provides persistence for the aggregate admissions counters.
type AdmissionsRepository struct {
	db *sqlx.DB
}

// NewAdmissionsRepository creates the repository.
func NewAdmissionsRepository(db *sqlx.DB) *AdmissionsRepository {
	return &AdmissionsRepository{db: db}
}

// List returns the admissions metric rows. The table normally holds one row.
func (r *AdmissionsRepository) List(ctx context.Context) ([]models.AdmissionsMetric, error) {
	const query = `SELECT id, total_applicants, target_applicants, accepted_students, target_acceptance, confirmed_enrollments, target_enrollments, updated_at FROM admissions_metrics ORDER BY id ASC`
	var metrics []models.AdmissionsMetric
	if err := r.db.SelectContext(ctx, &metrics, query); err != nil {
		return nil, fmt.Errorf("list admissions metrics: %w", err)
	}
	return metrics, nil
}

// Upsert writes the counters, inserting the row when absent.
func (r *AdmissionsRepository) Upsert(ctx context.Context, metric *models.AdmissionsMetric) error {
	metric.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO admissions_metrics (id, total_applicants, target_applicants, accepted_students, target_acceptance, confirmed_enrollments, target_enrollments, updated_at)
VALUES (:id, :total_applicants, :target_applicants, :accepted_students, :target_acceptance, :confirmed_enrollments, :target_enrollments, :updated_at)
ON CONFLICT (id) DO UPDATE SET
	total_applicants = EXCLUDED.total_applicants,
	target_applicants = EXCLUDED.target_applicants,
	accepted_students = EXCLUDED.accepted_students,
	target_acceptance = EXCLUDED.target_acceptance,
	confirmed_enrollments = EXCLUDED.confirmed_enrollments,
	target_enrollments = EXCLUDED.target_enrollments,
	updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, metric); err != nil {
		return fmt.Errorf("upsert admissions metrics: %w", err)
	}
	return nil
}
