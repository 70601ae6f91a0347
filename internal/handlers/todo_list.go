package handlers

//go:generate mockgen -source=todo_list.go -destination=todo_list_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/kebabmane/toDo/internal/models"
)

// TodoListManager manages the caller's named lists.
type TodoListManager interface {
	Create(ctx context.Context, callerID int64, p models.Payload) (*models.TodoListDB, error)
	List(ctx context.Context, callerID int64) ([]models.TodoListDB, error)
	Get(ctx context.Context, callerID, id int64) (*models.TodoListDB, error)
	Update(ctx context.Context, callerID, id int64, p models.Payload) (*models.TodoListDB, error)
	Delete(ctx context.Context, callerID, id int64) error
}

// TodoListRequest represents the JSON body for creating or renaming a list
// swagger:model TodoListRequest
type TodoListRequest struct {
	// List name, at most 100 characters
	// required: true
	// default: Groceries
	Name string `json:"name"`
}

// NewCreateTodoListHandler returns an HTTP handler creating a list.
// @Summary Create list
// @Tags todolists
// @Accept json
// @Produce json
// @Param list body handlers.TodoListRequest true "List"
// @Success 201 {object} models.TodoListDB "Created list"
// @Failure 400 {object} handlers.ErrorResponse "Name is required"
// @Router /todolists [post]
// @Security BearerAuth
func NewCreateTodoListHandler(svc TodoListManager) http.HandlerFunc {
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

		list, err := svc.Create(r.Context(), id, p)
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, list)
	}
}

// NewGetTodoListsHandler returns an HTTP handler listing the caller's lists with their todos.
// @Summary List lists
// @Tags todolists
// @Produce json
// @Success 200 {array} models.TodoListDB "Lists"
// @Router /todolists [get]
// @Security BearerAuth
func NewGetTodoListsHandler(svc TodoListManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		lists, err := svc.List(r.Context(), id)
		if err != nil {
			writeAppError(w, err)
			return
		}
		if lists == nil {
			lists = []models.TodoListDB{}
		}

		writeJSON(w, http.StatusOK, lists)
	}
}

// NewGetTodoListHandler returns an HTTP handler fetching one list.
// @Summary Get list
// @Tags todolists
// @Produce json
// @Param listID path int true "List id"
// @Success 200 {object} models.TodoListDB "List"
// @Failure 404 {object} handlers.ErrorResponse "TodoList not found"
// @Router /todolists/{listID} [get]
// @Security BearerAuth
func NewGetTodoListHandler(svc TodoListManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		listID, err := pathID(r, "listID")
		if err != nil {
			writeAppError(w, err)
			return
		}

		list, err := svc.Get(r.Context(), id, listID)
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

// NewUpdateTodoListHandler returns an HTTP handler renaming one list.
// @Summary Rename list
// @Tags todolists
// @Accept json
// @Produce json
// @Param listID path int true "List id"
// @Param list body handlers.TodoListRequest true "New name"
// @Success 200 {object} models.TodoListDB "Renamed list"
// @Failure 400 {object} handlers.ErrorResponse "Name is required"
// @Failure 404 {object} handlers.ErrorResponse "TodoList not found"
// @Router /todolists/{listID} [put]
// @Security BearerAuth
func NewUpdateTodoListHandler(svc TodoListManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		listID, err := pathID(r, "listID")
		if err != nil {
			writeAppError(w, err)
			return
		}
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		list, err := svc.Update(r.Context(), id, listID, p)
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

// NewDeleteTodoListHandler returns an HTTP handler deleting one list and its todos.
// @Summary Delete list
// @Tags todolists
// @Produce json
// @Param listID path int true "List id"
// @Success 200 {object} handlers.MessageResponse "Todo list deleted"
// @Failure 404 {object} handlers.ErrorResponse "TodoList not found"
// @Router /todolists/{listID} [delete]
// @Security BearerAuth
func NewDeleteTodoListHandler(svc TodoListManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		listID, err := pathID(r, "listID")
		if err != nil {
			writeAppError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), id, listID); err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Todo list deleted"})
	}
}
