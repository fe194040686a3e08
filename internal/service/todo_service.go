package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scintranet/staff-api/internal/dto"
	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

type todoRepository interface {
	List(ctx context.Context) ([]models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) error
	Update(ctx context.Context, todo *models.Todo) error
	SetCompleted(ctx context.Context, id int64, completed bool) error
	Delete(ctx context.Context, id int64) error
}

// TodoRequest describes the daily todo form, shared between create and
// update. Priority defaults to medium. CreatedBy comes from the session, not
// the request body.
type TodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority" validate:"omitempty,oneof=high medium low"`
	Completed   bool   `json:"completed"`
	CreatedBy   string `json:"-"`
}

// TodoService orchestrates daily todo CRUD. Like milestones, Toggle patches
// the single item instead of reloading the collection.
type TodoService struct {
	repo      todoRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTodoService constructs the service.
func NewTodoService(repo todoRepository, validate *validator.Validate, logger *zap.Logger) *TodoService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TodoService{repo: repo, validator: validate, logger: logger}
}

// List returns all todos mapped for display, earliest due date first.
func (s *TodoService) List(ctx context.Context) ([]dto.TodoView, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list todos")
	}
	return dto.MapTodos(todos), nil
}

// Create adds a new todo owned by the session user and returns the reloaded
// collection.
func (s *TodoService) Create(ctx context.Context, req TodoRequest) ([]dto.TodoView, error) {
	todo, err := s.buildTodo(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create todo")
	}
	return s.List(ctx)
}

// Update modifies a todo and returns the reloaded collection.
func (s *TodoService) Update(ctx context.Context, id int64, req TodoRequest) ([]dto.TodoView, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "todo id is required")
	}
	todo, err := s.buildTodo(req)
	if err != nil {
		return nil, err
	}
	todo.ID = id
	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update todo")
	}
	return s.List(ctx)
}

// Toggle sets the completion flag and returns the patched view.
func (s *TodoService) Toggle(ctx context.Context, id int64, completed bool) (*dto.TodoView, error) {
	if err := s.repo.SetCompleted(ctx, id, completed); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to toggle todo")
	}
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload todos")
	}
	for _, t := range todos {
		if t.ID == id {
			view := dto.MapTodo(t)
			return &view, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "todo not found")
}

// Delete removes a todo and returns the reloaded collection.
func (s *TodoService) Delete(ctx context.Context, id int64) ([]dto.TodoView, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete todo")
	}
	return s.List(ctx)
}

func (s *TodoService) buildTodo(req TodoRequest) (*models.Todo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid todo payload")
	}
	dueDate, err := parseDateOrToday(req.DueDate)
	if err != nil {
		return nil, err
	}
	todo := &models.Todo{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    priorityOrDefault(req.Priority),
		IsCompleted: req.Completed,
	}
	if req.CreatedBy != "" {
		createdBy := req.CreatedBy
		todo.CreatedBy = &createdBy
	}
	return todo, nil
}
