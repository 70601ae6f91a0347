package services

//go:generate mockgen -source=todo.go -destination=todo_mock.go -package=services

import (
	"context"

	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/logger"
	"github.com/kebabmane/toDo/internal/models"
)

const (
	msgOrderedIDsRequired = "ordered_ids is required"
	msgOrderedIDsList     = "ordered_ids must be a list"
)

// TodoStore defines persistence of todos inside an ordering scope.
type TodoStore interface {
	List(ctx context.Context, scope models.TodoScope, completed *bool) ([]models.TodoDB, error)
	ListByListIDs(ctx context.Context, listIDs []int64) ([]models.TodoDB, error)
	Get(ctx context.Context, scope models.TodoScope, id int64) (*models.TodoDB, error)
	MaxOrder(ctx context.Context, scope models.TodoScope) (int, error)
	Create(ctx context.Context, todo *models.TodoDB) (*models.TodoDB, error)
	Update(ctx context.Context, todo *models.TodoDB) (*models.TodoDB, error)
	SetOrder(ctx context.Context, scope models.TodoScope, id int64, order int) (bool, error)
	Delete(ctx context.Context, scope models.TodoScope, id int64) (bool, error)
	IDs(ctx context.Context, scope models.TodoScope) ([]int64, error)
	Stats(ctx context.Context, scope models.TodoScope) (total, completed int, err error)
}

// TodoService manages the flat todo collection of each user.
type TodoService struct {
	todos TodoStore
}

// NewTodoService creates a new TodoService.
func NewTodoService(todos TodoStore) *TodoService {
	return &TodoService{todos: todos}
}

func (s *TodoService) fetch(ctx context.Context, callerID, id int64) (*models.TodoDB, error) {
	return fetchScoped(ctx, callerID, msgTodoNotFound, func(ctx context.Context) (*models.TodoDB, error) {
		return s.todos.Get(ctx, models.FlatScope(callerID), id)
	})
}

// List returns the caller's flat todos in manual order.
func (s *TodoService) List(ctx context.Context, callerID int64, completed *bool) ([]models.TodoDB, error) {
	todos, err := s.todos.List(ctx, models.FlatScope(callerID), completed)
	if err != nil {
		return nil, internalError("Failed to get todos", err, "user_id", callerID)
	}
	return todos, nil
}

// Create appends a todo to the end of the caller's flat collection.
func (s *TodoService) Create(ctx context.Context, callerID int64, p models.Payload) (*models.TodoDB, error) {
	title, err := parseTitle(p)
	if err != nil {
		return nil, err
	}
	description, err := parseDescription(p)
	if err != nil {
		return nil, err
	}

	scope := models.FlatScope(callerID)
	maxOrder, err := s.todos.MaxOrder(ctx, scope)
	if err != nil {
		return nil, internalError("Failed to create todo", err, "user_id", callerID)
	}

	todo, err := s.todos.Create(ctx, &models.TodoDB{
		UserID:      callerID,
		Title:       title,
		Description: description,
		Order:       maxOrder + 1,
	})
	if err != nil {
		return nil, internalError("Failed to create todo", err, "user_id", callerID)
	}

	logger.Log.Infow("todo created", "todo_id", todo.ID, "user_id", callerID)
	return todo, nil
}

// Get returns one of the caller's flat todos.
func (s *TodoService) Get(ctx context.Context, callerID, id int64) (*models.TodoDB, error) {
	return s.fetch(ctx, callerID, id)
}

// Update applies the supplied fields to one of the caller's flat todos.
func (s *TodoService) Update(ctx context.Context, callerID, id int64, p models.Payload) (*models.TodoDB, error) {
	todo, err := s.fetch(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if _, err := applyTodoFields(todo, p); err != nil {
		return nil, err
	}

	updated, err := s.todos.Update(ctx, todo)
	if err != nil {
		return nil, internalError("Failed to update todo", err, "todo_id", id)
	}

	logger.Log.Infow("todo updated", "todo_id", id, "user_id", callerID)
	return updated, nil
}

// Delete removes one of the caller's flat todos.
func (s *TodoService) Delete(ctx context.Context, callerID, id int64) error {
	if _, err := s.fetch(ctx, callerID, id); err != nil {
		return err
	}

	if _, err := s.todos.Delete(ctx, models.FlatScope(callerID), id); err != nil {
		return internalError("Failed to delete todo", err, "todo_id", id)
	}

	logger.Log.Infow("todo deleted", "todo_id", id, "user_id", callerID)
	return nil
}

// Stats summarizes completion of the caller's flat todos.
func (s *TodoService) Stats(ctx context.Context, callerID int64) (models.TodoStats, error) {
	total, completed, err := s.todos.Stats(ctx, models.FlatScope(callerID))
	if err != nil {
		return models.TodoStats{}, internalError("Failed to get todo stats", err, "user_id", callerID)
	}
	return models.NewTodoStats(total, completed), nil
}

// Reorder assigns each listed id its position as order. Ids that are not integers
// or do not name one of the caller's flat todos are skipped.
func (s *TodoService) Reorder(ctx context.Context, callerID int64, p models.Payload) error {
	if !p.Has("ordered_ids") {
		return apperrors.Validation(msgOrderedIDsRequired)
	}
	items, err := p.List("ordered_ids")
	if err != nil {
		return apperrors.Validation(msgOrderedIDsList)
	}

	scope := models.FlatScope(callerID)
	for index, raw := range items {
		id, ok := models.ParseInt(raw)
		if !ok {
			continue
		}
		if _, err := s.todos.SetOrder(ctx, scope, id, index); err != nil {
			return internalError("Failed to reorder todos", err, "user_id", callerID)
		}
	}

	logger.Log.Infow("todos reordered", "user_id", callerID, "count", len(items))
	return nil
}
