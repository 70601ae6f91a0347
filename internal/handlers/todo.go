package handlers

//go:generate mockgen -source=todo.go -destination=todo_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/kebabmane/toDo/internal/models"
)

// TodoManager is the flat todo collection of the caller.
type TodoManager interface {
	List(ctx context.Context, callerID int64, completed *bool) ([]models.TodoDB, error)
	Create(ctx context.Context, callerID int64, p models.Payload) (*models.TodoDB, error)
	Get(ctx context.Context, callerID, id int64) (*models.TodoDB, error)
	Update(ctx context.Context, callerID, id int64, p models.Payload) (*models.TodoDB, error)
	Delete(ctx context.Context, callerID, id int64) error
	Stats(ctx context.Context, callerID int64) (models.TodoStats, error)
	Reorder(ctx context.Context, callerID int64, p models.Payload) error
}

// TodoRequest represents the JSON body for creating or updating a todo
// swagger:model TodoRequest
type TodoRequest struct {
	// Title, 1 to 200 characters
	// default: Buy milk
	Title string `json:"title"`

	// Optional description
	Description *string `json:"description"`

	// Completion flag, must be a JSON boolean
	Completed bool `json:"completed"`

	// Explicit position, nested todos only
	Order int `json:"order"`
}

// ReorderRequest represents the JSON body of a reorder request
// swagger:model ReorderRequest
type ReorderRequest struct {
	// Todo ids in their new order
	// required: true
	OrderedIDs []int64 `json:"ordered_ids"`
}

// TodosResponse lists todos in manual order
// swagger:model TodosResponse
type TodosResponse struct {
	Todos []models.TodoDB `json:"todos"`
	Count int             `json:"count"`
}

// TodoResponse wraps a single todo
// swagger:model TodoResponse
type TodoResponse struct {
	// Success message, omitted on reads
	Message string         `json:"message,omitempty"`
	Todo    *models.TodoDB `json:"todo"`
}

// StatsResponse wraps completion statistics
// swagger:model StatsResponse
type StatsResponse struct {
	Stats models.TodoStats `json:"stats"`
}

func newTodosResponse(todos []models.TodoDB) TodosResponse {
	if todos == nil {
		todos = []models.TodoDB{}
	}
	return TodosResponse{Todos: todos, Count: len(todos)}
}

// NewGetTodosHandler returns an HTTP handler listing the caller's flat todos.
// @Summary List todos
// @Tags todos
// @Produce json
// @Param completed query string false "Filter by completion (true, 1, yes)"
// @Success 200 {object} handlers.TodosResponse "Todos"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /todos [get]
// @Security BearerAuth
func NewGetTodosHandler(svc TodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		todos, err := svc.List(r.Context(), id, parseCompleted(r))
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newTodosResponse(todos))
	}
}

// NewCreateTodoHandler returns an HTTP handler creating a flat todo.
// @Summary Create todo
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body handlers.TodoRequest true "Todo"
// @Success 201 {object} handlers.TodoResponse "Todo created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /todos [post]
// @Security BearerAuth
func NewCreateTodoHandler(svc TodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		todo, err := svc.Create(r.Context(), id, p)
		if err != nil {
			writeAppError(w, err)
			return
		}

		recordOperation(r, "flat", "create")
		writeJSON(w, http.StatusCreated, TodoResponse{Message: "Todo created successfully", Todo: todo})
	}
}

// NewGetTodoHandler returns an HTTP handler fetching one flat todo.
// @Summary Get todo
// @Tags todos
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} handlers.TodoResponse "Todo"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Router /todos/{id} [get]
// @Security BearerAuth
func NewGetTodoHandler(svc TodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		todoID, err := pathID(r, "id")
		if err != nil {
			writeAppError(w, err)
			return
		}

		todo, err := svc.Get(r.Context(), id, todoID)
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TodoResponse{Todo: todo})
	}
}

// NewUpdateTodoHandler returns an HTTP handler updating one flat todo.
// @Summary Update todo
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param todo body handlers.TodoRequest true "Fields to change"
// @Success 200 {object} handlers.TodoResponse "Todo updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid fields"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Router /todos/{id} [put]
// @Security BearerAuth
func NewUpdateTodoHandler(svc TodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		todoID, err := pathID(r, "id")
		if err != nil {
			writeAppError(w, err)
			return
		}
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		todo, err := svc.Update(r.Context(), id, todoID, p)
		if err != nil {
			writeAppError(w, err)
			return
		}

		recordOperation(r, "flat", "update")
		writeJSON(w, http.StatusOK, TodoResponse{Message: "Todo updated successfully", Todo: todo})
	}
}

// NewDeleteTodoHandler returns an HTTP handler deleting one flat todo.
// @Summary Delete todo
// @Tags todos
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} handlers.MessageResponse "Todo deleted"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Router /todos/{id} [delete]
// @Security BearerAuth
func NewDeleteTodoHandler(svc TodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		todoID, err := pathID(r, "id")
		if err != nil {
			writeAppError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), id, todoID); err != nil {
			writeAppError(w, err)
			return
		}

		recordOperation(r, "flat", "delete")
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Todo deleted successfully"})
	}
}

// NewTodoStatsHandler returns an HTTP handler summarizing the caller's flat todos.
// @Summary Todo statistics
// @Tags todos
// @Produce json
// @Success 200 {object} handlers.StatsResponse "Statistics"
// @Router /todos/stats [get]
// @Security BearerAuth
func NewTodoStatsHandler(svc TodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		stats, err := svc.Stats(r.Context(), id)
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, StatsResponse{Stats: stats})
	}
}

// NewReorderTodosHandler returns an HTTP handler reordering the caller's flat todos.
// @Summary Reorder todos
// @Description Ids that do not belong to the caller are skipped
// @Tags todos
// @Accept json
// @Produce json
// @Param request body handlers.ReorderRequest true "New order"
// @Success 200 {object} handlers.MessageResponse "Todos reordered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid ordered_ids"
// @Router /todos/reorder [put]
// @Security BearerAuth
func NewReorderTodosHandler(svc TodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		if err := svc.Reorder(r.Context(), id, p); err != nil {
			writeAppError(w, err)
			return
		}

		recordOperation(r, "flat", "reorder")
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Todos reordered successfully"})
	}
}
