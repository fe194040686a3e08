package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/scintranet/staff-api/internal/models"
)

// TodoRepository provides persistence for daily todos.
type TodoRepository struct {
	db *sqlx.DB
}

// NewTodoRepository creates the repository.
func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// List returns all todos ordered by due date ascending, joining the creator
// profile so the display owner can be derived.
func (r *TodoRepository) List(ctx context.Context) ([]models.Todo, error) {
	const query = `SELECT t.id, t.title, t.description, t.due_date, t.priority, t.is_completed, t.created_by, p.full_name AS owner_full_name, t.created_at, t.updated_at
FROM daily_todos t
LEFT JOIN staff_profiles p ON p.id = t.created_by
ORDER BY t.due_date ASC, t.id ASC`
	var todos []models.Todo
	if err := r.db.SelectContext(ctx, &todos, query); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// Create inserts a new todo and assigns the generated id.
func (r *TodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	now := time.Now().UTC()
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = now
	}
	todo.UpdatedAt = now

	const query = `INSERT INTO daily_todos (title, description, due_date, priority, is_completed, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		todo.Title, todo.Description, todo.DueDate, todo.Priority, todo.IsCompleted,
		todo.CreatedBy, todo.CreatedAt, todo.UpdatedAt,
	).Scan(&todo.ID); err != nil {
		return fmt.Errorf("create todo: %w", err)
	}
	return nil
}

// Update modifies an existing todo matching on identifier.
func (r *TodoRepository) Update(ctx context.Context, todo *models.Todo) error {
	todo.UpdatedAt = time.Now().UTC()
	const query = `UPDATE daily_todos SET title = :title, description = :description, due_date = :due_date, priority = :priority, is_completed = :is_completed, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, todo); err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	return nil
}

// SetCompleted flips only the completion flag.
func (r *TodoRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	const query = `UPDATE daily_todos SET is_completed = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, completed, time.Now().UTC()); err != nil {
		return fmt.Errorf("set todo completed: %w", err)
	}
	return nil
}

// Delete removes a todo by identifier.
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM daily_todos WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}
