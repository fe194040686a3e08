package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/scintranet/staff-api/internal/models"
)

// CommunicationRepository provides persistence for announcements.
type CommunicationRepository struct {
	db *sqlx.DB
}

// NewCommunicationRepository creates the repository.
func NewCommunicationRepository(db *sqlx.DB) *CommunicationRepository {
	return &CommunicationRepository{db: db}
}

// List returns all communications ordered by date descending.
func (r *CommunicationRepository) List(ctx context.Context) ([]models.Communication, error) {
	const query = `SELECT id, title, content, author, category, priority, date, created_at, updated_at FROM communications ORDER BY date DESC, id DESC`
	var comms []models.Communication
	if err := r.db.SelectContext(ctx, &comms, query); err != nil {
		return nil, fmt.Errorf("list communications: %w", err)
	}
	return comms, nil
}

// Create inserts a new communication and assigns the generated id.
func (r *CommunicationRepository) Create(ctx context.Context, comm *models.Communication) error {
	now := time.Now().UTC()
	if comm.CreatedAt.IsZero() {
		comm.CreatedAt = now
	}
	comm.UpdatedAt = now

	const query = `INSERT INTO communications (title, content, author, category, priority, date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		comm.Title, comm.Content, comm.Author, comm.Category, comm.Priority,
		comm.Date, comm.CreatedAt, comm.UpdatedAt,
	).Scan(&comm.ID); err != nil {
		return fmt.Errorf("create communication: %w", err)
	}
	return nil
}

// Update modifies an existing communication matching on identifier.
func (r *CommunicationRepository) Update(ctx context.Context, comm *models.Communication) error {
	comm.UpdatedAt = time.Now().UTC()
	const query = `UPDATE communications SET title = :title, content = :content, author = :author, category = :category, priority = :priority, date = :date, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, comm); err != nil {
		return fmt.Errorf("update communication: %w", err)
	}
	return nil
}

// Delete removes a communication by identifier.
func (r *CommunicationRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM communications WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete communication: %w", err)
	}
	return nil
}
