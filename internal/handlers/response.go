package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/logger"
	"github.com/kebabmane/toDo/internal/metrics"
	"github.com/kebabmane/toDo/internal/middlewares"
	"github.com/kebabmane/toDo/internal/models"
)

const msgBodyMustBeJSON = "Request body must be JSON"

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Todo not found
	Error string `json:"error"`
}

// MessageResponse is the body of requests that return only a confirmation
// swagger:model MessageResponse
type MessageResponse struct {
	// Confirmation message
	// default: Todo deleted successfully
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeAppError renders err as {"error": message} with the status of its kind.
// Errors that are not application errors are logged and reported as 500.
func writeAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		logger.Log.Errorw("internal server error", "error", err)
	}
	appErr = apperrors.From(err)
	writeJSON(w, appErr.HTTPStatus(), ErrorResponse{Error: appErr.Message})
}

// decodePayload reads a non-empty JSON object from the request body.
func decodePayload(r *http.Request) (models.Payload, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, apperrors.Validation(msgBodyMustBeJSON)
	}

	var p models.Payload
	if err := json.Unmarshal(body, &p); err != nil || len(p) == 0 {
		return nil, apperrors.Validation(msgBodyMustBeJSON)
	}
	return p, nil
}

// callerID returns the id of the authenticated caller.
func callerID(r *http.Request) (int64, error) {
	id, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		return 0, apperrors.Authentication("Authorization token is required")
	}
	return id.UserID, nil
}

// pathID parses an integer URL parameter. Non-integer ids do not match any route.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, apperrors.NotFound("Endpoint not found")
	}
	return id, nil
}

// parseCompleted reads the optional completed filter. true, 1 and yes select
// completed todos, any other value selects pending ones.
func parseCompleted(r *http.Request) *bool {
	if !r.URL.Query().Has("completed") {
		return nil
	}
	switch strings.ToLower(r.URL.Query().Get("completed")) {
	case "true", "1", "yes":
		completed := true
		return &completed
	default:
		completed := false
		return &completed
	}
}

// recordOperation counts a todo mutation once the request transaction commits.
func recordOperation(r *http.Request, scope, operation string) {
	middlewares.AfterCommit(r.Context(), func() {
		metrics.RecordTodoOperation(scope, operation)
	})
}
