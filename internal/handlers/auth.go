package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/kebabmane/toDo/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, p models.Payload) (*models.UserDB, string, error)
}

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, p models.Payload) (*models.UserDB, string, error)
}

// MeGetter returns the profile of the caller.
type MeGetter interface {
	Me(ctx context.Context, callerID int64) (*models.UserDB, error)
}

// PasswordResetter implements both steps of the reset flow.
type PasswordResetter interface {
	RequestPasswordReset(ctx context.Context, p models.Payload) error
	ResetPassword(ctx context.Context, p models.Payload) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username, at least 3 characters
	// required: true
	// default: alice
	Username string `json:"username"`

	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// default: secret1
	Password string `json:"password"`
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username or email
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret1
	Password string `json:"password"`
}

// AuthResponse is returned by registration and login
// swagger:model AuthResponse
type AuthResponse struct {
	// Success message
	// default: Login successful
	Message string `json:"message"`

	// Public profile of the user
	User *models.UserDB `json:"user"`

	// JWT access token
	AccessToken string `json:"access_token"`
}

// UserResponse wraps a single public profile
// swagger:model UserResponse
type UserResponse struct {
	User *models.UserDB `json:"user"`
}

// PasswordResetRequest represents the JSON body for requesting a reset token
// swagger:model PasswordResetRequest
type PasswordResetRequest struct {
	// Email of the account
	// required: true
	Email string `json:"email"`
}

// ResetPasswordRequest represents the JSON body for redeeming a reset token
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Reset token
	// required: true
	Token string `json:"token"`

	// New password
	// required: true
	Password string `json:"password"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account and returns an access token. The first account becomes an admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		user, token, err := svc.Register(r.Context(), p)
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			Message:     "User registered successfully",
			User:        user,
			AccessToken: token,
		})
	}
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Log in
// @Description Authenticates by username or email and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Credentials"
// @Success 200 {object} handlers.AuthResponse "Login successful"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		user, token, err := svc.Login(r.Context(), p)
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{
			Message:     "Login successful",
			User:        user,
			AccessToken: token,
		})
	}
}

// NewMeHandler returns an HTTP handler for the caller's profile.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc MeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := callerID(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		user, err := svc.Me(r.Context(), id)
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{User: user})
	}
}

// NewRequestPasswordResetHandler returns an HTTP handler that issues a reset token.
// @Summary Request a password reset
// @Description Always answers with the same message whether or not the email is registered
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.PasswordResetRequest true "Email"
// @Success 200 {object} handlers.MessageResponse "Request accepted"
// @Failure 400 {object} handlers.ErrorResponse "Email is required"
// @Router /auth/request-password-reset [post]
func NewRequestPasswordResetHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		if err := svc.RequestPasswordReset(r.Context(), p); err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Message: "If a user with that email exists, a password reset token has been sent.",
		})
	}
}

// NewResetPasswordHandler returns an HTTP handler that redeems a reset token.
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} handlers.MessageResponse "Password reset"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodePayload(r)
		if err != nil {
			writeAppError(w, err)
			return
		}

		if err := svc.ResetPassword(r.Context(), p); err != nil {
			writeAppError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password has been reset successfully."})
	}
}
