package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/logger"
	"github.com/kebabmane/toDo/internal/models"
)

const (
	maxTitleLength    = 200
	maxListNameLength = 100

	msgTitleLength       = "Title must be between 1 and 200 characters"
	msgDescriptionType   = "Description must be a string"
	msgCompletedType     = "Completed field must be a boolean"
	msgTodoNotFound      = "Todo not found"
	msgTodoListNotFound  = "TodoList not found"
	msgTodoListForbidden = "TodoList not found or you do not have permission to access it"
)

// internalError logs a store failure and hides it behind a stable message.
func internalError(message string, err error, keysAndValues ...any) error {
	logger.Log.Errorw(message, append(keysAndValues, "error", err)...)
	return apperrors.Persistence(message, err)
}

// fetchScoped loads a resource and reports both absence and foreign ownership as the
// same NotFound, so callers cannot tell the two apart.
func fetchScoped[T any, PT interface {
	*T
	models.Owned
}](ctx context.Context, callerID int64, notFound string, fetch func(ctx context.Context) (PT, error)) (PT, error) {
	resource, err := fetch(ctx)
	if err != nil {
		return nil, internalError("failed to fetch resource", err, "caller_id", callerID)
	}
	if resource == nil || !models.BelongsTo(resource, callerID) {
		return nil, apperrors.NotFound(notFound)
	}
	return resource, nil
}

// parseTitle reads, trims and length-checks the title field.
func parseTitle(p models.Payload) (string, error) {
	title, err := p.String("title")
	if err != nil {
		return "", apperrors.Validation(msgTitleLength)
	}
	title = strings.TrimSpace(title)
	if n := utf8.RuneCountInString(title); n < 1 || n > maxTitleLength {
		return "", apperrors.Validation(msgTitleLength)
	}
	return title, nil
}

// parseDescription reads the optional description. Null and blank values clear it.
func parseDescription(p models.Payload) (*string, error) {
	if !p.Has("description") || p.IsNull("description") {
		return nil, nil
	}
	description, err := p.String("description")
	if err != nil {
		return nil, apperrors.Validation(msgDescriptionType)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil
	}
	return &description, nil
}

// applyTodoFields copies title, description and completed from the payload onto
// the todo, leaving absent fields untouched. It returns the completion state before
// the update.
func applyTodoFields(todo *models.TodoDB, p models.Payload) (wasCompleted bool, err error) {
	wasCompleted = todo.Completed

	if p.Has("title") {
		title, err := parseTitle(p)
		if err != nil {
			return wasCompleted, err
		}
		todo.Title = title
	}

	if p.Has("description") {
		description, err := parseDescription(p)
		if err != nil {
			return wasCompleted, err
		}
		todo.Description = description
	}

	if p.Has("completed") {
		completed, err := p.Bool("completed")
		if err != nil {
			return wasCompleted, apperrors.Validation(msgCompletedType)
		}
		todo.Completed = completed
	}

	return wasCompleted, nil
}
