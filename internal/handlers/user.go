package handlers

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/kebabmane/toDo/internal/models"
)

// UserManager implements the admin-only user directory.
type UserManager interface {
	ListUsers(ctx context.Context, callerID int64) ([]models.UserDB, error)
	GetUser(ctx context.Context, callerID, id int64) (*models.UserDB, error)
	UpdateUser(ctx context.Context, callerID, id int64, p models.Payload) (*models.UserDB, error)
	DeleteUser(ctx context.Context, callerID, id int64) error
	ResetUserPassword(ctx context.Context, callerID, id int64, p models.Payload) error
}

// UpdateUserRequest represents the JSON body for changing a user
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// One of user, power_user, admin
	Role string `json:"role"`

	// Activation flag
	IsActive bool `json:"is_active"`
}

// AdminPasswordRequest represents the JSON body of a forced password reset
// swagger:model AdminPasswordRequest
type AdminPasswordRequest struct {
	// New password
	// required: true
	Password string `json:"password"`
}

// NewGetUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB "Users"
// @Failure 403 {object} handlers.ErrorResponse "Admins only!"
// @Router /users [get]
// @Security BearerAuth
func NewGetUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		users, err := svc.ListUsers(r.Context(), id)
		if err != nil {
			writeAppError(w, err)
			return
		}
		if users == nil {
			users = []models.UserDB{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetUserHandler returns an HTTP handler fetching one user.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.UserDB "User"
// @Failure 403 {object} handlers.ErrorResponse "Admins only!"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		userID, err := pathID(r, "id")
		if err != nil {
			writeAppError(w, err)
			return
		}

		user, err := svc.GetUser(r.Context(), id, userID)
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateUserHandler returns an HTTP handler changing role or activation of a user.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param user body handlers.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid role"
// @Failure 403 {object} handlers.ErrorResponse "Admins only!"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		userID, err := pathID(r, "id")
		if err != nil {
			writeAppError(w, err)
			return
		}
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		user, err := svc.UpdateUser(r.Context(), id, userID, p)
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user and everything it owns.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} handlers.MessageResponse "User deleted"
// @Failure 403 {object} handlers.ErrorResponse "Admins only!"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		userID, err := pathID(r, "id")
		if err != nil {
			writeAppError(w, err)
			return
		}

		if err := svc.DeleteUser(r.Context(), id, userID); err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted"})
	}
}

// NewResetUserPasswordHandler returns an HTTP handler replacing a user's password.
// @Summary Force password reset
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param request body handlers.AdminPasswordRequest true "New password"
// @Success 200 {object} handlers.MessageResponse "Password reset"
// @Failure 400 {object} handlers.ErrorResponse "Password is required"
// @Failure 403 {object} handlers.ErrorResponse "Admins only!"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id}/reset-password [post]
// @Security BearerAuth
func NewResetUserPasswordHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}
		userID, err := pathID(r, "id")
		if err != nil {
			writeAppError(w, err)
			return
		}
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		if err := svc.ResetUserPassword(r.Context(), id, userID, p); err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password has been reset successfully."})
	}
}
