package services

//go:generate mockgen -source=todo_list.go -destination=todo_list_mock.go -package=services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/logger"
	"github.com/kebabmane/toDo/internal/models"
)

const (
	msgNameRequired = "Name is required"
	msgNameLength   = "Name must be at most 100 characters"
)

// TodoListStore defines persistence of owner-scoped lists.
type TodoListStore interface {
	Create(ctx context.Context, userID int64, name string) (*models.TodoListDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.TodoListDB, error)
	Get(ctx context.Context, userID, id int64) (*models.TodoListDB, error)
	Rename(ctx context.Context, userID, id int64, name string) (*models.TodoListDB, error)
	Delete(ctx context.Context, userID, id int64) (bool, error)
}

// TodoListService manages named lists and embeds their todos in responses.
type TodoListService struct {
	lists TodoListStore
	todos TodoStore
}

// NewTodoListService creates a new TodoListService.
func NewTodoListService(lists TodoListStore, todos TodoStore) *TodoListService {
	return &TodoListService{lists: lists, todos: todos}
}

func parseListName(p models.Payload) (string, error) {
	name, err := p.String("name")
	name = strings.TrimSpace(name)
	if err != nil || name == "" {
		return "", apperrors.Validation(msgNameRequired)
	}
	if utf8.RuneCountInString(name) > maxListNameLength {
		return "", apperrors.Validation(msgNameLength)
	}
	return name, nil
}

func (s *TodoListService) fetch(ctx context.Context, callerID, id int64) (*models.TodoListDB, error) {
	return fetchScoped(ctx, callerID, msgTodoListNotFound, func(ctx context.Context) (*models.TodoListDB, error) {
		return s.lists.Get(ctx, callerID, id)
	})
}

func (s *TodoListService) withTodos(ctx context.Context, list *models.TodoListDB) (*models.TodoListDB, error) {
	todos, err := s.todos.List(ctx, models.ListScope(list.UserID, list.ID), nil)
	if err != nil {
		return nil, internalError("Failed to get todo list", err, "list_id", list.ID)
	}
	list.Todos = todos
	return list, nil
}

// Create adds an empty list owned by the caller.
func (s *TodoListService) Create(ctx context.Context, callerID int64, p models.Payload) (*models.TodoListDB, error) {
	name, err := parseListName(p)
	if err != nil {
		return nil, err
	}

	list, err := s.lists.Create(ctx, callerID, name)
	if err != nil {
		return nil, internalError("Database error creating todolist", err, "user_id", callerID)
	}
	list.Todos = []models.TodoDB{}

	logger.Log.Infow("todolist created", "list_id", list.ID, "user_id", callerID)
	return list, nil
}

// List returns all lists of the caller with their todos.
func (s *TodoListService) List(ctx context.Context, callerID int64) ([]models.TodoListDB, error) {
	lists, err := s.lists.ListByUser(ctx, callerID)
	if err != nil {
		return nil, internalError("Failed to get todo lists", err, "user_id", callerID)
	}

	ids := make([]int64, 0, len(lists))
	for _, l := range lists {
		ids = append(ids, l.ID)
	}
	todos, err := s.todos.ListByListIDs(ctx, ids)
	if err != nil {
		return nil, internalError("Failed to get todo lists", err, "user_id", callerID)
	}

	byList := make(map[int64][]models.TodoDB, len(lists))
	for _, t := range todos {
		if t.TodoListID != nil {
			byList[*t.TodoListID] = append(byList[*t.TodoListID], t)
		}
	}
	for i := range lists {
		lists[i].Todos = byList[lists[i].ID]
		if lists[i].Todos == nil {
			lists[i].Todos = []models.TodoDB{}
		}
	}
	return lists, nil
}

// Get returns one of the caller's lists with its todos.
func (s *TodoListService) Get(ctx context.Context, callerID, id int64) (*models.TodoListDB, error) {
	list, err := s.fetch(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	return s.withTodos(ctx, list)
}

// Update renames one of the caller's lists.
func (s *TodoListService) Update(ctx context.Context, callerID, id int64, p models.Payload) (*models.TodoListDB, error) {
	if _, err := s.fetch(ctx, callerID, id); err != nil {
		return nil, err
	}
	name, err := parseListName(p)
	if err != nil {
		return nil, err
	}

	list, err := s.lists.Rename(ctx, callerID, id, name)
	if err != nil {
		return nil, internalError("Failed to update todo list", err, "list_id", id)
	}
	if list == nil {
		return nil, apperrors.NotFound(msgTodoListNotFound)
	}

	logger.Log.Infow("todolist renamed", "list_id", id, "user_id", callerID)
	return s.withTodos(ctx, list)
}

// Delete removes one of the caller's lists together with its todos.
func (s *TodoListService) Delete(ctx context.Context, callerID, id int64) error {
	if _, err := s.fetch(ctx, callerID, id); err != nil {
		return err
	}
	if _, err := s.lists.Delete(ctx, callerID, id); err != nil {
		return internalError("Failed to delete todo list", err, "list_id", id)
	}

	logger.Log.Infow("todolist deleted", "list_id", id, "user_id", callerID)
	return nil
}
