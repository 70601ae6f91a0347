package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kebabmane/toDo/internal/logger"
)

const healthPingTimeout = 2 * time.Second

type indexResponse struct {
	Message   string         `json:"message"`
	Version   string         `json:"version"`
	Endpoints map[string]any `json:"endpoints"`
}

func newIndexHandler(version string) http.HandlerFunc {
	resp := indexResponse{
		Message: "ToDo API is running",
		Version: version,
		Endpoints: map[string]any{
			"auth": map[string]string{
				"register":               "POST /auth/register",
				"login":                  "POST /auth/login",
				"me":                     "GET /auth/me",
				"request_password_reset": "POST /auth/request-password-reset",
				"reset_password":         "POST /auth/reset-password",
			},
			"todos": map[string]string{
				"list":    "GET /todos",
				"create":  "POST /todos",
				"get":     "GET /todos/:id",
				"update":  "PUT /todos/:id",
				"delete":  "DELETE /todos/:id",
				"stats":   "GET /todos/stats",
				"reorder": "PUT /todos/reorder",
			},
			"todolists": map[string]any{
				"list":   "GET /todolists",
				"create": "POST /todolists",
				"get":    "GET /todolists/:id",
				"update": "PUT /todolists/:id",
				"delete": "DELETE /todolists/:id",
				"todos": map[string]string{
					"list":    "GET /todolists/:id/todos",
					"create":  "POST /todolists/:id/todos",
					"get":     "GET /todolists/:id/todos/:todoId",
					"update":  "PUT /todolists/:id/todos/:todoId",
					"delete":  "DELETE /todolists/:id/todos/:todoId",
					"reorder": "PUT /todolists/:id/todos/reorder",
				},
			},
			"users": map[string]string{
				"list":           "GET /users",
				"get":            "GET /users/:id",
				"update":         "PUT /users/:id",
				"delete":         "DELETE /users/:id",
				"reset_password": "POST /users/:id/reset-password",
			},
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}

func newHealthHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("database ping failed", "error", err)
			writeError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
