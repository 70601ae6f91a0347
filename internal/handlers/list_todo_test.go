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

const gateMessage = "TodoList not found or you do not have permission to access it"

func TestListTodoHandlers_Gate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockListTodoManager(ctrl)
	gate := apperrors.NotFound(gateMessage)

	mockSvc.EXPECT().List(gomock.Any(), int64(1), int64(9), nil).Return(nil, gate)
	rr := httptest.NewRecorder()
	NewGetListTodosHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/todolists/9/todos", "", 1, map[string]string{"listID": "9"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"`+gateMessage+`"}`, rr.Body.String())

	// A malformed body is rejected before the list is looked up.
	rr = httptest.NewRecorder()
	NewCreateListTodoHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/todolists/9/todos", `not json`, 1, map[string]string{"listID": "9"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Request body must be JSON"}`, rr.Body.String())
}

func TestCreateListTodoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockListTodoManager(ctrl)
	listID := int64(2)

	mockSvc.EXPECT().Create(gomock.Any(), int64(1), int64(2), gomock.Any()).
		Return(&models.TodoDB{ID: 8, UserID: 1, TodoListID: &listID, Title: "eggs", Order: 4}, nil)

	rr := httptest.NewRecorder()
	NewCreateListTodoHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/todolists/2/todos", `{"title":"eggs"}`, 1, map[string]string{"listID": "2"}))
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp TodoResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Todo created successfully", resp.Message)
	assert.Equal(t, 4, resp.Todo.Order)
	assert.Equal(t, int64(2), *resp.Todo.TodoListID)
}

func TestListTodoByIDHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockListTodoManager(ctrl)
	params := map[string]string{"listID": "2", "id": "8"}

	mockSvc.EXPECT().Get(gomock.Any(), int64(1), int64(2), int64(8)).Return(&models.TodoDB{ID: 8}, nil)
	rr := httptest.NewRecorder()
	NewGetListTodoHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/todolists/2/todos/8", "", 1, params))
	assert.Equal(t, http.StatusOK, rr.Code)

	mockSvc.EXPECT().Update(gomock.Any(), int64(1), int64(2), int64(8), gomock.Any()).
		Return(nil, apperrors.Validation("Order field must be an integer"))
	rr = httptest.NewRecorder()
	NewUpdateListTodoHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPut, "/todolists/2/todos/8", `{"order":"x"}`, 1, params))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Order field must be an integer"}`, rr.Body.String())

	mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(2), int64(8)).Return(nil)
	rr = httptest.NewRecorder()
	NewDeleteListTodoHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodDelete, "/todolists/2/todos/8", "", 1, params))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Todo deleted successfully"}`, rr.Body.String())
}

func TestReorderListTodosHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockListTodoManager(ctrl)
	params := map[string]string{"listID": "2"}

	mockSvc.EXPECT().Reorder(gomock.Any(), int64(1), int64(2), gomock.Any()).
		Return(apperrors.Validation("Provided IDs do not match todos in this list"))
	rr := httptest.NewRecorder()
	NewReorderListTodosHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPut, "/todolists/2/todos/reorder", `{"ordered_ids":[1]}`, 1, params))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	mockSvc.EXPECT().Reorder(gomock.Any(), int64(1), int64(2), gomock.Any()).Return(nil)
	rr = httptest.NewRecorder()
	NewReorderListTodosHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPut, "/todolists/2/todos/reorder", `{"ordered_ids":[1,2]}`, 1, params))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Todos reordered successfully"}`, rr.Body.String())
}
