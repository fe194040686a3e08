package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/scintranet/staff-api/internal/models"
)

// EventRepository provides persistence for intranet events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates the repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns all events ordered by date descending, joining the creator
// profile so the display owner can be derived.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	const query = `SELECT e.id, e.title, e.date, e.time, e.location, e.organizer, e.category, e.attendees, e.created_by, p.full_name AS owner_full_name, e.created_at, e.updated_at
FROM events e
LEFT JOIN staff_profiles p ON p.id = e.created_by
ORDER BY e.date DESC, e.id DESC`
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Create inserts a new event and assigns the generated id.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now

	const query = `INSERT INTO events (title, date, time, location, organizer, category, attendees, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		event.Title, event.Date, event.Time, event.Location, event.Organizer,
		event.Category, event.Attendees, event.CreatedBy, event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Update modifies an existing event matching on identifier.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().UTC()
	const query = `UPDATE events SET title = :title, date = :date, time = :time, location = :location, organizer = :organizer, category = :category, attendees = :attendees, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete removes an event by identifier.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
