package handlers

//go:generate mockgen -source=list_todo.go -destination=list_todo_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/kebabmane/toDo/internal/models"
)

// ListTodoManager manages todos nested inside one of the caller's lists.
type ListTodoManager interface {
	List(ctx context.Context, callerID, listID int64, completed *bool) ([]models.TodoDB, error)
	Create(ctx context.Context, callerID, listID int64, p models.Payload) (*models.TodoDB, error)
	Get(ctx context.Context, callerID, listID, id int64) (*models.TodoDB, error)
	Update(ctx context.Context, callerID, listID, id int64, p models.Payload) (*models.TodoDB, error)
	Delete(ctx context.Context, callerID, listID, id int64) error
	Reorder(ctx context.Context, callerID, listID int64, p models.Payload) error
}

// listRequest resolves the caller and list id shared by all nested routes.
func listRequest(r *http.Request) (int64, int64, error) {
	id, err := callerID(r)
	if err != nil {
		return 0, 0, err
	}
	listID, err := pathID(r, "listID")
	if err != nil {
		return 0, 0, err
	}
	return id, listID, nil
}

// NewGetListTodosHandler returns an HTTP handler listing the todos of a list.
// @Summary List todos of a list
// @Tags list-todos
// @Produce json
// @Param listID path int true "List id"
// @Param completed query string false "Filter by completion (true, 1, yes)"
// @Success 200 {object} handlers.TodosResponse "Todos"
// @Failure 404 {object} handlers.ErrorResponse "TodoList not found or you do not have permission to access it"
// @Router /todolists/{listID}/todos [get]
// @Security BearerAuth
func NewGetListTodosHandler(svc ListTodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, listID, err := listRequest(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		todos, err := svc.List(r.Context(), id, listID, parseCompleted(r))
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newTodosResponse(todos))
	}
}

// NewCreateListTodoHandler returns an HTTP handler appending a todo to a list.
// @Summary Create todo in a list
// @Tags list-todos
// @Accept json
// @Produce json
// @Param listID path int true "List id"
// @Param todo body handlers.TodoRequest true "Todo"
// @Success 201 {object} handlers.TodoResponse "Todo created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid fields"
// @Failure 404 {object} handlers.ErrorResponse "TodoList not found or you do not have permission to access it"
// @Router /todolists/{listID}/todos [post]
// @Security BearerAuth
func NewCreateListTodoHandler(svc ListTodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, listID, err := listRequest(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		todo, err := svc.Create(r.Context(), id, listID, p)
		if err != nil {
			writeAppError(w, err)
			return
		}

		recordOperation(r, "list", "create")
		writeJSON(w, http.StatusCreated, TodoResponse{Message: "Todo created successfully", Todo: todo})
	}
}

// NewGetListTodoHandler returns an HTTP handler fetching one todo of a list.
// @Summary Get todo of a list
// @Tags list-todos
// @Produce json
// @Param listID path int true "List id"
// @Param id path int true "Todo id"
// @Success 200 {object} handlers.TodoResponse "Todo"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Router /todolists/{listID}/todos/{id} [get]
// @Security BearerAuth
func NewGetListTodoHandler(svc ListTodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, listID, err := listRequest(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		todoID, err := pathID(r, "id")
		if err != nil {
			writeAppError(w, err)
			return
		}

		todo, err := svc.Get(r.Context(), id, listID, todoID)
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TodoResponse{Todo: todo})
	}
}

// NewUpdateListTodoHandler returns an HTTP handler updating one todo of a list.
// @Summary Update todo of a list
// @Description Completing a todo moves it to the end of the list unless an explicit order is given
// @Tags list-todos
// @Accept json
// @Produce json
// @Param listID path int true "List id"
// @Param id path int true "Todo id"
// @Param todo body handlers.TodoRequest true "Fields to change"
// @Success 200 {object} handlers.TodoResponse "Todo updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid fields"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Router /todolists/{listID}/todos/{id} [put]
// @Security BearerAuth
func NewUpdateListTodoHandler(svc ListTodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, listID, err := listRequest(r)
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

		todo, err := svc.Update(r.Context(), id, listID, todoID, p)
		if err != nil {
			writeAppError(w, err)
			return
		}

		recordOperation(r, "list", "update")
		writeJSON(w, http.StatusOK, TodoResponse{Message: "Todo updated successfully", Todo: todo})
	}
}

// NewDeleteListTodoHandler returns an HTTP handler deleting one todo of a list.
// @Summary Delete todo of a list
// @Tags list-todos
// @Produce json
// @Param listID path int true "List id"
// @Param id path int true "Todo id"
// @Success 200 {object} handlers.MessageResponse "Todo deleted"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Router /todolists/{listID}/todos/{id} [delete]
// @Security BearerAuth
func NewDeleteListTodoHandler(svc ListTodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, listID, err := listRequest(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		todoID, err := pathID(r, "id")
		if err != nil {
			writeAppError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), id, listID, todoID); err != nil {
			writeAppError(w, err)
			return
		}

		recordOperation(r, "list", "delete")
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Todo deleted successfully"})
	}
}

// NewReorderListTodosHandler returns an HTTP handler reordering all todos of a list.
// @Summary Reorder todos of a list
// @Description ordered_ids must name exactly the todos of the list
// @Tags list-todos
// @Accept json
// @Produce json
// @Param listID path int true "List id"
// @Param request body handlers.ReorderRequest true "New order"
// @Success 200 {object} handlers.MessageResponse "Todos reordered"
// @Failure 400 {object} handlers.ErrorResponse "Provided IDs do not match todos in this list"
// @Router /todolists/{listID}/todos/reorder [put]
// @Security BearerAuth
func NewReorderListTodosHandler(svc ListTodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, listID, err := listRequest(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		if err := svc.Reorder(r.Context(), id, listID, p); err != nil {
			writeAppError(w, err)
			return
		}

		recordOperation(r, "list", "reorder")
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Todos reordered successfully"})
	}
}
