package services

import (
	"context"

	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/logger"
	"github.com/kebabmane/toDo/internal/models"
)

const (
	msgAdminsOnly       = "Admins only!"
	msgInvalidRole      = "Invalid role"
	msgIsActiveType     = "is_active must be a boolean"
	msgPasswordRequired = "Password is required"
)

// RequireRole fails with an authorization error unless the user holds exactly the
// given role. Roles are not hierarchical.
func RequireRole(user *models.UserDB, role models.Role) error {
	if user == nil || user.Role != role {
		return apperrors.Authorization(msgAdminsOnly)
	}
	return nil
}

// AdminService implements user management for administrators.
type AdminService struct {
	users  UserStore
	hasher PasswordHasher
}

// NewAdminService creates a new AdminService.
func NewAdminService(users UserStore, hasher PasswordHasher) *AdminService {
	return &AdminService{users: users, hasher: hasher}
}

// authorize re-reads the caller so that a demoted or deleted admin loses access
// before the token expires.
func (s *AdminService) authorize(ctx context.Context, callerID int64) error {
	caller, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return internalError("Failed to authorize caller", err, "user_id", callerID)
	}
	if err := RequireRole(caller, models.RoleAdmin); err != nil {
		logger.Log.Warnw("admin access denied", "user_id", callerID)
		return err
	}
	return nil
}

func (s *AdminService) target(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to get user", err, "user_id", id)
	}
	if user == nil {
		return nil, apperrors.NotFound(msgUserNotFound)
	}
	return user, nil
}

// ListUsers returns the whole user directory.
func (s *AdminService) ListUsers(ctx context.Context, callerID int64) ([]models.UserDB, error) {
	if err := s.authorize(ctx, callerID); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, internalError("Failed to get users", err)
	}
	return users, nil
}

// GetUser returns a single user.
func (s *AdminService) GetUser(ctx context.Context, callerID, id int64) (*models.UserDB, error) {
	if err := s.authorize(ctx, callerID); err != nil {
		return nil, err
	}
	return s.target(ctx, id)
}

// UpdateUser changes the role and/or activation flag of a user.
func (s *AdminService) UpdateUser(ctx context.Context, callerID, id int64, p models.Payload) (*models.UserDB, error) {
	if err := s.authorize(ctx, callerID); err != nil {
		return nil, err
	}
	if _, err := s.target(ctx, id); err != nil {
		return nil, err
	}

	var role *models.Role
	if p.Has("role") {
		raw, err := p.String("role")
		if err != nil {
			return nil, apperrors.Validation(msgInvalidRole)
		}
		parsed, err := models.ParseRole(raw)
		if err != nil {
			return nil, apperrors.Validation(msgInvalidRole)
		}
		role = &parsed
	}

	var isActive *bool
	if p.Has("is_active") {
		active, err := p.Bool("is_active")
		if err != nil {
			return nil, apperrors.Validation(msgIsActiveType)
		}
		isActive = &active
	}

	user, err := s.users.Update(ctx, id, role, isActive)
	if err != nil {
		return nil, internalError("Failed to update user", err, "user_id", id)
	}
	if user == nil {
		return nil, apperrors.NotFound(msgUserNotFound)
	}

	logger.Log.Infow("user updated", "user_id", id, "by", callerID, "role", user.Role, "is_active", user.IsActive)
	return user, nil
}

// DeleteUser removes a user and everything it owns.
func (s *AdminService) DeleteUser(ctx context.Context, callerID, id int64) error {
	if err := s.authorize(ctx, callerID); err != nil {
		return err
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return internalError("Failed to delete user", err, "user_id", id)
	}
	if !deleted {
		return apperrors.NotFound(msgUserNotFound)
	}

	logger.Log.Infow("user deleted", "user_id", id, "by", callerID)
	return nil
}

// ResetUserPassword replaces the credential of a user without a reset token.
func (s *AdminService) ResetUserPassword(ctx context.Context, callerID, id int64, p models.Payload) error {
	if err := s.authorize(ctx, callerID); err != nil {
		return err
	}
	if _, err := s.target(ctx, id); err != nil {
		return err
	}

	plain, err := p.String("password")
	if err != nil {
		return apperrors.Validation(msgPasswordRequired)
	}

	digest, err := s.hasher.Hash(plain)
	if err != nil {
		return internalError("Failed to reset password", err, "user_id", id)
	}
	if err := s.users.UpdatePassword(ctx, id, digest); err != nil {
		return internalError("Failed to reset password", err, "user_id", id)
	}

	logger.Log.Infow("password reset by admin", "user_id", id, "by", callerID)
	return nil
}

// PromoteToAdmin grants the admin role to the named user. It is used by the
// operator CLI and bypasses the caller check.
func (s *AdminService) PromoteToAdmin(ctx context.Context, username string) error {
	found, err := s.users.SetRoleByUsername(ctx, username, models.RoleAdmin)
	if err != nil {
		return internalError("Failed to promote user", err, "username", username)
	}
	if !found {
		return apperrors.NotFound(msgUserNotFound)
	}

	logger.Log.Infow("user promoted to admin", "username", username)
	return nil
}
