package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/models"
	"github.com/kebabmane/toDo/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireRole(t *testing.T) {
	forbidden := apperrors.Authorization("Admins only!")

	assert.NoError(t, services.RequireRole(&models.UserDB{Role: models.RoleAdmin}, models.RoleAdmin))
	assert.ErrorIs(t, services.RequireRole(&models.UserDB{Role: models.RolePowerUser}, models.RoleAdmin), forbidden)
	assert.ErrorIs(t, services.RequireRole(&models.UserDB{Role: models.RoleUser}, models.RoleAdmin), forbidden)
	assert.ErrorIs(t, services.RequireRole(nil, models.RoleAdmin), forbidden)
}

func newAdminService(t *testing.T) (*services.AdminService, *services.MockUserStore, *services.MockPasswordHasher) {
	ctrl := gomock.NewController(t)
	users := services.NewMockUserStore(ctrl)
	hasher := services.NewMockPasswordHasher(ctrl)
	return services.NewAdminService(users, hasher), users, hasher
}

func asAdmin(users *services.MockUserStore, id int64) {
	users.EXPECT().GetByID(gomock.Any(), id).Return(&models.UserDB{ID: id, Role: models.RoleAdmin}, nil)
}

func TestAdminService_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("power user is not admin", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		users.EXPECT().GetByID(ctx, int64(2)).Return(&models.UserDB{ID: 2, Role: models.RolePowerUser}, nil)

		_, err := svc.ListUsers(ctx, 2)
		assert.ErrorIs(t, err, apperrors.Authorization("Admins only!"))
	})

	t.Run("deleted caller", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		users.EXPECT().GetByID(ctx, int64(2)).Return(nil, nil)

		_, err := svc.ListUsers(ctx, 2)
		assert.ErrorIs(t, err, apperrors.Authorization("Admins only!"))
	})

	t.Run("admin", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		asAdmin(users, 1)
		users.EXPECT().List(ctx).Return([]models.UserDB{{ID: 1}, {ID: 2}}, nil)

		got, err := svc.ListUsers(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestAdminService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	target := &models.UserDB{ID: 2, Role: models.RoleUser, IsActive: true}

	t.Run("invalid role", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		asAdmin(users, 1)
		users.EXPECT().GetByID(ctx, int64(2)).Return(target, nil)

		_, err := svc.UpdateUser(ctx, 1, 2, payload(t, `{"role":"superuser"}`))
		assert.ErrorIs(t, err, apperrors.Validation("Invalid role"))
	})

	t.Run("is_active must be boolean", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		asAdmin(users, 1)
		users.EXPECT().GetByID(ctx, int64(2)).Return(target, nil)

		_, err := svc.UpdateUser(ctx, 1, 2, payload(t, `{"is_active":"false"}`))
		assert.ErrorIs(t, err, apperrors.Validation("is_active must be a boolean"))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		asAdmin(users, 1)
		users.EXPECT().GetByID(ctx, int64(3)).Return(nil, nil)

		_, err := svc.UpdateUser(ctx, 1, 3, payload(t, `{"role":"admin"}`))
		assert.ErrorIs(t, err, apperrors.NotFound("User not found"))
	})

	t.Run("role and activation", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		asAdmin(users, 1)
		users.EXPECT().GetByID(ctx, int64(2)).Return(target, nil)
		role, active := models.RolePowerUser, false
		users.EXPECT().Update(ctx, int64(2), &role, &active).
			Return(&models.UserDB{ID: 2, Role: models.RolePowerUser, IsActive: false}, nil)

		user, err := svc.UpdateUser(ctx, 1, 2, payload(t, `{"role":"power_user","is_active":false}`))
		require.NoError(t, err)
		assert.Equal(t, models.RolePowerUser, user.Role)
		assert.False(t, user.IsActive)
	})
}

func TestAdminService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newAdminService(t)

	asAdmin(users, 1)
	users.EXPECT().Delete(ctx, int64(2)).Return(true, nil)
	assert.NoError(t, svc.DeleteUser(ctx, 1, 2))

	asAdmin(users, 1)
	users.EXPECT().Delete(ctx, int64(3)).Return(false, nil)
	assert.ErrorIs(t, svc.DeleteUser(ctx, 1, 3), apperrors.NotFound("User not found"))
}

func TestAdminService_ResetUserPassword(t *testing.T) {
	ctx := context.Background()
	target := &models.UserDB{ID: 2}

	t.Run("password required", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		asAdmin(users, 1)
		users.EXPECT().GetByID(ctx, int64(2)).Return(target, nil)

		err := svc.ResetUserPassword(ctx, 1, 2, payload(t, `{"pass":"x"}`))
		assert.ErrorIs(t, err, apperrors.Validation("Password is required"))
	})

	t.Run("password not a string", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		asAdmin(users, 1)
		users.EXPECT().GetByID(ctx, int64(2)).Return(target, nil)

		err := svc.ResetUserPassword(ctx, 1, 2, payload(t, `{"password":123}`))
		assert.ErrorIs(t, err, apperrors.Validation("Password is required"))
	})

	t.Run("short password accepted", func(t *testing.T) {
		svc, users, hasher := newAdminService(t)
		asAdmin(users, 1)
		users.EXPECT().GetByID(ctx, int64(2)).Return(target, nil)
		hasher.EXPECT().Hash("abc").Return("digest", nil)
		users.EXPECT().UpdatePassword(ctx, int64(2), "digest").Return(nil)

		assert.NoError(t, svc.ResetUserPassword(ctx, 1, 2, payload(t, `{"password":"abc"}`)))
	})

	t.Run("replaces digest", func(t *testing.T) {
		svc, users, hasher := newAdminService(t)
		asAdmin(users, 1)
		users.EXPECT().GetByID(ctx, int64(2)).Return(target, nil)
		hasher.EXPECT().Hash("newpass").Return("digest", nil)
		users.EXPECT().UpdatePassword(ctx, int64(2), "digest").Return(nil)

		assert.NoError(t, svc.ResetUserPassword(ctx, 1, 2, payload(t, `{"password":"newpass"}`)))
	})
}

func TestAdminService_PromoteToAdmin(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newAdminService(t)

	users.EXPECT().SetRoleByUsername(ctx, "alice", models.RoleAdmin).Return(true, nil)
	assert.NoError(t, svc.PromoteToAdmin(ctx, "alice"))

	users.EXPECT().SetRoleByUsername(ctx, "ghost", models.RoleAdmin).Return(false, nil)
	assert.ErrorIs(t, svc.PromoteToAdmin(ctx, "ghost"), apperrors.NotFound("User not found"))
}
