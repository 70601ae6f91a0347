package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/models"
	"github.com/kebabmane/toDo/internal/repositories"
	"github.com/kebabmane/toDo/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(t *testing.T, body string) models.Payload {
	t.Helper()
	var p models.Payload
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

type authMocks struct {
	users  *services.MockUserStore
	tokens *services.MockResetTokenStore
	jwt    *services.MockJWTGenerator
	hasher *services.MockPasswordHasher
	kafka  *services.MockKafkaWriter
}

func newAuthService(t *testing.T) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		users:  services.NewMockUserStore(ctrl),
		tokens: services.NewMockResetTokenStore(ctrl),
		jwt:    services.NewMockJWTGenerator(ctrl),
		hasher: services.NewMockPasswordHasher(ctrl),
		kafka:  services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewAuthService(m.users, m.tokens, m.jwt, m.hasher, m.kafka, time.Hour)
	return svc, m
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newAuthService(t)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing email", `{"username":"alice","password":"secret1"}`, "Missing required fields: username, email, password"},
		{"short username", `{"username":"ab","email":"a@b.com","password":"secret1"}`, "Username must be at least 3 characters long"},
		{"username not a string", `{"username":123,"email":"a@b.com","password":"secret1"}`, "Username must be at least 3 characters long"},
		{"invalid email", `{"username":"alice","email":"alice@nowhere","password":"secret1"}`, "Invalid email format"},
		{"short password", `{"username":"alice","email":"a@b.com","password":"12345"}`, "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, token, err := svc.Register(context.Background(), payload(t, tt.body))
			assert.ErrorIs(t, err, apperrors.Validation(tt.wantMsg))
			assert.Nil(t, user)
			assert.Empty(t, token)
		})
	}
}

func TestAuthService_Register_FirstUserIsAdmin(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	created := &models.UserDB{ID: 1, Username: "alice", Email: "a@b.com", Role: models.RoleAdmin, IsActive: true}
	m.users.EXPECT().Count(ctx).Return(int64(0), nil)
	m.hasher.EXPECT().Hash("secret1").Return("digest", nil)
	m.users.EXPECT().Create(ctx, "alice", "a@b.com", "digest", models.RoleAdmin).Return(created, nil)
	m.jwt.EXPECT().Generate(ctx, int64(1), models.RoleAdmin).Return("token", nil)

	user, token, err := svc.Register(ctx, payload(t, `{"username":"  Alice ","email":"A@B.com","password":"secret1"}`))
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "token", token)
}

func TestAuthService_Register_SecondUser(t *testing.T) {
	ctx := context.Background()
	body := `{"username":"bob","email":"bob@example.com","password":"secret1"}`

	t.Run("defaults to user role", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().Count(ctx).Return(int64(1), nil)
		m.users.EXPECT().ExistsByUsername(ctx, "bob").Return(false, nil)
		m.users.EXPECT().ExistsByEmail(ctx, "bob@example.com").Return(false, nil)
		m.hasher.EXPECT().Hash("secret1").Return("digest", nil)
		m.users.EXPECT().Create(ctx, "bob", "bob@example.com", "digest", models.RoleUser).
			Return(&models.UserDB{ID: 2, Username: "bob", Role: models.RoleUser}, nil)
		m.jwt.EXPECT().Generate(ctx, int64(2), models.RoleUser).Return("token", nil)

		user, _, err := svc.Register(ctx, payload(t, body))
		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, user.Role)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().Count(ctx).Return(int64(1), nil)
		m.users.EXPECT().ExistsByUsername(ctx, "bob").Return(true, nil)

		_, _, err := svc.Register(ctx, payload(t, body))
		assert.ErrorIs(t, err, apperrors.Conflict("Username already exists"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().Count(ctx).Return(int64(1), nil)
		m.users.EXPECT().ExistsByUsername(ctx, "bob").Return(false, nil)
		m.users.EXPECT().ExistsByEmail(ctx, "bob@example.com").Return(true, nil)

		_, _, err := svc.Register(ctx, payload(t, body))
		assert.ErrorIs(t, err, apperrors.Conflict("Email already exists"))
	})

	t.Run("unique violation at insert", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().Count(ctx).Return(int64(1), nil)
		m.users.EXPECT().ExistsByUsername(ctx, "bob").Return(false, nil)
		m.users.EXPECT().ExistsByEmail(ctx, "bob@example.com").Return(false, nil)
		m.hasher.EXPECT().Hash("secret1").Return("digest", nil)
		m.users.EXPECT().Create(ctx, "bob", "bob@example.com", "digest", models.RoleUser).
			Return(nil, repositories.ErrDuplicateEmail)

		_, _, err := svc.Register(ctx, payload(t, body))
		assert.ErrorIs(t, err, apperrors.Conflict("Email already exists"))
	})

	t.Run("store failure", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().Count(ctx).Return(int64(0), errors.New("db down"))

		_, _, err := svc.Register(ctx, payload(t, body))
		assert.True(t, apperrors.IsKind(err, apperrors.KindPersistence))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	stored := &models.UserDB{ID: 3, Username: "carol", Email: "carol@example.com", PasswordHash: "digest", Role: models.RolePowerUser}

	t.Run("missing password", func(t *testing.T) {
		svc, _ := newAuthService(t)
		_, _, err := svc.Login(ctx, payload(t, `{"username":"carol"}`))
		assert.ErrorIs(t, err, apperrors.Validation("Missing required fields: username, password"))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByUsernameOrEmail(ctx, "nobody").Return(nil, nil)

		_, _, err := svc.Login(ctx, payload(t, `{"username":"nobody","password":"secret1"}`))
		assert.ErrorIs(t, err, apperrors.Authentication("Invalid username or password"))
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByUsernameOrEmail(ctx, "carol").Return(stored, nil)
		m.hasher.EXPECT().Verify("wrong", "digest").Return(false)

		_, _, err := svc.Login(ctx, payload(t, `{"username":"carol","password":"wrong"}`))
		assert.ErrorIs(t, err, apperrors.Authentication("Invalid username or password"))
	})

	t.Run("email in any case", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByUsernameOrEmail(ctx, "carol@example.com").Return(stored, nil)
		m.hasher.EXPECT().Verify("secret1", "digest").Return(true)
		m.jwt.EXPECT().Generate(ctx, int64(3), models.RolePowerUser).Return("token", nil)

		user, token, err := svc.Login(ctx, payload(t, `{"username":"Carol@Example.com","password":"secret1"}`))
		require.NoError(t, err)
		assert.Equal(t, stored, user)
		assert.Equal(t, "token", token)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()

	svc, m := newAuthService(t)
	m.users.EXPECT().GetByID(ctx, int64(4)).Return(&models.UserDB{ID: 4}, nil)
	user, err := svc.Me(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), user.ID)

	m.users.EXPECT().GetByID(ctx, int64(5)).Return(nil, nil)
	_, err = svc.Me(ctx, 5)
	assert.ErrorIs(t, err, apperrors.NotFound("User not found"))
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("email required", func(t *testing.T) {
		svc, _ := newAuthService(t)
		err := svc.RequestPasswordReset(ctx, payload(t, `{"email":"  "}`))
		assert.ErrorIs(t, err, apperrors.Validation("Email is required"))
	})

	t.Run("unknown email is silent", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)

		assert.NoError(t, svc.RequestPasswordReset(ctx, payload(t, `{"email":"ghost@example.com"}`)))
	})

	t.Run("issues token and publishes event", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(ctx, "dave@example.com").Return(&models.UserDB{ID: 6, Email: "dave@example.com"}, nil)

		var issued string
		m.tokens.EXPECT().Create(ctx, int64(6), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, token string, expiresAt time.Time) error {
				issued = token
				assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
				return nil
			})
		m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				var event models.PasswordResetEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, "password_reset_requested", event.Operation)
				assert.Equal(t, issued, event.Token)
				assert.Equal(t, int64(6), event.UserID)
				return nil
			})

		require.NoError(t, svc.RequestPasswordReset(ctx, payload(t, `{"email":"Dave@Example.com"}`)))
		assert.Len(t, issued, 43)
	})

	t.Run("without kafka writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := services.NewMockUserStore(ctrl)
		tokens := services.NewMockResetTokenStore(ctrl)
		svc := services.NewAuthService(users, tokens, services.NewMockJWTGenerator(ctrl), services.NewMockPasswordHasher(ctrl), nil, time.Hour)

		users.EXPECT().GetByEmail(ctx, "dave@example.com").Return(&models.UserDB{ID: 6}, nil)
		tokens.EXPECT().Create(ctx, int64(6), gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.RequestPasswordReset(ctx, payload(t, `{"email":"dave@example.com"}`)))
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newAuthService(t)
		err := svc.ResetPassword(ctx, payload(t, `{"token":"abc"}`))
		assert.ErrorIs(t, err, apperrors.Validation("Token and new password are required"))
	})

	t.Run("short password accepted", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().GetByToken(ctx, "abc").
			Return(&models.PasswordResetToken{ID: 1, UserID: 7, Token: "abc", ExpiresAt: time.Now().Add(time.Hour)}, nil)
		m.users.EXPECT().GetByID(ctx, int64(7)).Return(&models.UserDB{ID: 7}, nil)
		m.hasher.EXPECT().Hash("123").Return("new-digest", nil)
		m.users.EXPECT().UpdatePassword(ctx, int64(7), "new-digest").Return(nil)
		m.tokens.EXPECT().Delete(ctx, int64(1)).Return(nil)

		assert.NoError(t, svc.ResetPassword(ctx, payload(t, `{"token":"abc","password":"123"}`)))
	})

	t.Run("expired token", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().GetByToken(ctx, "abc").
			Return(&models.PasswordResetToken{ID: 1, UserID: 7, ExpiresAt: time.Now().Add(-time.Minute)}, nil)

		err := svc.ResetPassword(ctx, payload(t, `{"token":"abc","password":"newpass"}`))
		assert.ErrorIs(t, err, apperrors.Validation("Invalid or expired token"))
	})

	t.Run("single use", func(t *testing.T) {
		svc, m := newAuthService(t)
		stored := &models.PasswordResetToken{ID: 1, UserID: 7, Token: "abc", ExpiresAt: time.Now().Add(time.Hour)}

		gomock.InOrder(
			m.tokens.EXPECT().GetByToken(ctx, "abc").Return(stored, nil),
			m.tokens.EXPECT().GetByToken(ctx, "abc").Return(nil, nil),
		)
		m.users.EXPECT().GetByID(ctx, int64(7)).Return(&models.UserDB{ID: 7}, nil)
		m.hasher.EXPECT().Hash("newpass").Return("new-digest", nil)
		m.users.EXPECT().UpdatePassword(ctx, int64(7), "new-digest").Return(nil)
		m.tokens.EXPECT().Delete(ctx, int64(1)).Return(nil)

		body := `{"token":"abc","password":"newpass"}`
		require.NoError(t, svc.ResetPassword(ctx, payload(t, body)))
		assert.ErrorIs(t, svc.ResetPassword(ctx, payload(t, body)), apperrors.Validation("Invalid or expired token"))
	})
}
