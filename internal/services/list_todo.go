package services

import (
	"context"
	"encoding/json"
	"math"

	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/logger"
	"github.com/kebabmane/toDo/internal/models"
)

const (
	msgTitleMissing       = "Missing required field: title"
	msgOrderType          = "Order field must be an integer"
	msgListOrderedIDs     = "Missing or invalid required field: ordered_ids (must be a list)"
	msgOrderedIDsMismatch = "Provided IDs do not match todos in this list"
)

// ListTodoService manages todos nested inside a list. Every operation first passes
// the ownership gate of the containing list.
type ListTodoService struct {
	lists TodoListStore
	todos TodoStore
}

// NewListTodoService creates a new ListTodoService.
func NewListTodoService(lists TodoListStore, todos TodoStore) *ListTodoService {
	return &ListTodoService{lists: lists, todos: todos}
}

// gate verifies that the list exists and is owned by the caller.
func (s *ListTodoService) gate(ctx context.Context, callerID, listID int64) (models.TodoScope, error) {
	_, err := fetchScoped(ctx, callerID, msgTodoListForbidden, func(ctx context.Context) (*models.TodoListDB, error) {
		return s.lists.Get(ctx, callerID, listID)
	})
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			logger.Log.Warnw("list access denied", "user_id", callerID, "list_id", listID)
		}
		return models.TodoScope{}, err
	}
	return models.ListScope(callerID, listID), nil
}

func (s *ListTodoService) fetch(ctx context.Context, callerID int64, scope models.TodoScope, id int64) (*models.TodoDB, error) {
	return fetchScoped(ctx, callerID, msgTodoNotFound, func(ctx context.Context) (*models.TodoDB, error) {
		return s.todos.Get(ctx, scope, id)
	})
}

// List returns the list's todos in manual order.
func (s *ListTodoService) List(ctx context.Context, callerID, listID int64, completed *bool) ([]models.TodoDB, error) {
	scope, err := s.gate(ctx, callerID, listID)
	if err != nil {
		return nil, err
	}

	todos, err := s.todos.List(ctx, scope, completed)
	if err != nil {
		return nil, internalError("Failed to get todos", err, "list_id", listID)
	}
	return todos, nil
}

// Create appends a todo to the end of the list.
func (s *ListTodoService) Create(ctx context.Context, callerID, listID int64, p models.Payload) (*models.TodoDB, error) {
	scope, err := s.gate(ctx, callerID, listID)
	if err != nil {
		return nil, err
	}

	if !p.Has("title") {
		return nil, apperrors.Validation(msgTitleMissing)
	}
	title, err := parseTitle(p)
	if err != nil {
		return nil, err
	}
	description, err := parseDescription(p)
	if err != nil {
		return nil, err
	}

	maxOrder, err := s.todos.MaxOrder(ctx, scope)
	if err != nil {
		return nil, internalError("Database error creating todo", err, "list_id", listID)
	}

	todo, err := s.todos.Create(ctx, &models.TodoDB{
		UserID:      callerID,
		TodoListID:  &listID,
		Title:       title,
		Description: description,
		Completed:   false,
		Order:       maxOrder + 1,
	})
	if err != nil {
		return nil, internalError("Database error creating todo", err, "list_id", listID)
	}

	logger.Log.Infow("todo created in list", "todo_id", todo.ID, "list_id", listID)
	return todo, nil
}

// Get returns a todo of the list.
func (s *ListTodoService) Get(ctx context.Context, callerID, listID, id int64) (*models.TodoDB, error) {
	scope, err := s.gate(ctx, callerID, listID)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, callerID, scope, id)
}

// Update applies the supplied fields. Completing a todo moves it to the end of the
// list; an explicit integer order is applied afterwards and wins.
func (s *ListTodoService) Update(ctx context.Context, callerID, listID, id int64, p models.Payload) (*models.TodoDB, error) {
	scope, err := s.gate(ctx, callerID, listID)
	if err != nil {
		return nil, err
	}

	todo, err := s.fetch(ctx, callerID, scope, id)
	if err != nil {
		return nil, err
	}

	wasCompleted, err := applyTodoFields(todo, p)
	if err != nil {
		return nil, err
	}

	if !wasCompleted && todo.Completed {
		maxOrder, err := s.todos.MaxOrder(ctx, scope)
		if err != nil {
			return nil, internalError("Database error updating todo", err, "todo_id", id)
		}
		todo.Order = maxOrder + 1
		logger.Log.Debugw("completed todo moved to end", "todo_id", id, "order", todo.Order)
	}

	if p.Has("order") {
		order, err := p.Int("order")
		if err != nil || order < math.MinInt32 || order > math.MaxInt32 {
			return nil, apperrors.Validation(msgOrderType)
		}
		todo.Order = int(order)
	}

	updated, err := s.todos.Update(ctx, todo)
	if err != nil {
		return nil, internalError("Database error updating todo", err, "todo_id", id)
	}

	logger.Log.Infow("todo updated in list", "todo_id", id, "list_id", listID)
	return updated, nil
}

// Delete removes a todo of the list.
func (s *ListTodoService) Delete(ctx context.Context, callerID, listID, id int64) error {
	scope, err := s.gate(ctx, callerID, listID)
	if err != nil {
		return err
	}
	if _, err := s.fetch(ctx, callerID, scope, id); err != nil {
		return err
	}

	if _, err := s.todos.Delete(ctx, scope, id); err != nil {
		return internalError("Failed to delete todo", err, "todo_id", id)
	}

	logger.Log.Infow("todo deleted from list", "todo_id", id, "list_id", listID)
	return nil
}

// Reorder sets the order of every todo in the list from its position in ordered_ids.
// The ids must name exactly the todos of the list, otherwise nothing changes.
func (s *ListTodoService) Reorder(ctx context.Context, callerID, listID int64, p models.Payload) error {
	scope, err := s.gate(ctx, callerID, listID)
	if err != nil {
		return err
	}

	items, err := p.List("ordered_ids")
	if err != nil {
		return apperrors.Validation(msgListOrderedIDs)
	}

	existing, err := s.todos.IDs(ctx, scope)
	if err != nil {
		return internalError("Failed to reorder todos", err, "list_id", listID)
	}

	ordered, ok := matchIDs(items, existing)
	if !ok {
		return apperrors.Validation(msgOrderedIDsMismatch)
	}

	for index, id := range ordered {
		if _, err := s.todos.SetOrder(ctx, scope, id, index); err != nil {
			return internalError("Failed to reorder todos", err, "list_id", listID)
		}
	}

	logger.Log.Infow("todos reordered in list", "list_id", listID, "count", len(ordered))
	return nil
}

// matchIDs parses items as ids and reports whether they have the same length and the
// same set of values as existing.
func matchIDs(items []json.RawMessage, existing []int64) ([]int64, bool) {
	if len(items) != len(existing) {
		return nil, false
	}

	want := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		want[id] = struct{}{}
	}

	ordered := make([]int64, 0, len(items))
	got := make(map[int64]struct{}, len(items))
	for _, raw := range items {
		id, ok := models.ParseInt(raw)
		if !ok {
			return nil, false
		}
		if _, known := want[id]; !known {
			return nil, false
		}
		got[id] = struct{}{}
		ordered = append(ordered, id)
	}

	return ordered, len(got) == len(want)
}
