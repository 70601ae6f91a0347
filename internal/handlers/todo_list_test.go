package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodoListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockTodoListManager(ctrl)

	mockSvc.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).
		Return(&models.TodoListDB{ID: 3, UserID: 1, Name: "groceries", Todos: []models.TodoDB{}}, nil)

	rr := httptest.NewRecorder()
	NewCreateTodoListHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/todolists", `{"name":"groceries"}`, 1, nil))
	assert.Equal(t, http.StatusCreated, rr.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "groceries", body["name"])
	assert.Equal(t, []any{}, body["todos"])
}

func TestGetTodoListsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockTodoListManager(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)

	rr := httptest.NewRecorder()
	NewGetTodoListsHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/todolists", "", 1, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestTodoListByIDHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockTodoListManager(ctrl)
	params := map[string]string{"listID": "3"}

	mockSvc.EXPECT().Get(gomock.Any(), int64(1), int64(3)).Return(nil, apperrors.NotFound("TodoList not found"))
	rr := httptest.NewRecorder()
	NewGetTodoListHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/todolists/3", "", 1, params))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"TodoList not found"}`, rr.Body.String())

	mockSvc.EXPECT().Update(gomock.Any(), int64(1), int64(3), gomock.Any()).
		Return(&models.TodoListDB{ID: 3, UserID: 1, Name: "renamed", Todos: []models.TodoDB{}}, nil)
	rr = httptest.NewRecorder()
	NewUpdateTodoListHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPut, "/todolists/3", `{"name":"renamed"}`, 1, params))
	assert.Equal(t, http.StatusOK, rr.Code)

	mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(3)).Return(nil)
	rr = httptest.NewRecorder()
	NewDeleteTodoListHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodDelete, "/todolists/3", "", 1, params))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Todo list deleted"}`, rr.Body.String())
}
