package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/scintranet/staff-api/internal/models"
)

// PendingUserRepository provides persistence for registration requests.
type PendingUserRepository struct {
	db *sqlx.DB
}

// NewPendingUserRepository creates the repository.
func NewPendingUserRepository(db *sqlx.DB) *PendingUserRepository {
	return &PendingUserRepository{db: db}
}

// FindByID returns a pending user by identifier.
func (r *PendingUserRepository) FindByID(ctx context.Context, id int64) (*models.PendingUser, error) {
	const query = `SELECT id, email, full_name, password_hash, status, created_at FROM pending_users WHERE id = $1 LIMIT 1`
	var pending models.PendingUser
	if err := r.db.GetContext(ctx, &pending, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find pending user by id: %w", err)
	}
	return &pending, nil
}

// FindByEmail returns a pending user by email address.
func (r *PendingUserRepository) FindByEmail(ctx context.Context, email string) (*models.PendingUser, error) {
	const query = `SELECT id, email, full_name, password_hash, status, created_at FROM pending_users WHERE email = $1 LIMIT 1`
	var pending models.PendingUser
	if err := r.db.GetContext(ctx, &pending, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find pending user by email: %w", err)
	}
	return &pending, nil
}

// Create inserts a registration request and assigns the generated id.
func (r *PendingUserRepository) Create(ctx context.Context, pending *models.PendingUser) error {
	if pending.Status == "" {
		pending.Status = models.PendingStatusPending
	}
	if pending.CreatedAt.IsZero() {
		pending.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO pending_users (email, full_name, password_hash, status, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, pending.Email, pending.FullName, pending.PasswordHash, pending.Status, pending.CreatedAt).Scan(&pending.ID); err != nil {
		return fmt.Errorf("create pending user: %w", err)
	}
	return nil
}

// ListPending returns registration requests awaiting approval, newest first.
func (r *PendingUserRepository) ListPending(ctx context.Context) ([]models.PendingUser, error) {
	const query = `SELECT id, email, full_name, password_hash, status, created_at FROM pending_users WHERE status = $1 ORDER BY created_at DESC`
	var pending []models.PendingUser
	if err := r.db.SelectContext(ctx, &pending, query, models.PendingStatusPending); err != nil {
		return nil, fmt.Errorf("list pending users: %w", err)
	}
	return pending, nil
}

// UpdateStatus moves a pending user along its lifecycle.
func (r *PendingUserRepository) UpdateStatus(ctx context.Context, id int64, status models.PendingStatus) error {
	const query = `UPDATE pending_users SET status = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("update pending user status: %w", err)
	}
	return nil
}
