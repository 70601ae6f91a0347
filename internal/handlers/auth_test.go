package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 1, Username: "alice", Email: "a@b.com", PasswordHash: "digest", Role: models.RoleAdmin, IsActive: true}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"username":"alice","email":"a@b.com","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(user, "token", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate",
			body: `{"username":"alice","email":"a@b.com","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, "", apperrors.Conflict("Username already exists"))
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Username already exists",
		},
		{
			name: "internal server error",
			body: `{"username":"alice","email":"a@b.com","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
		{
			name:         "invalid json",
			body:         `{"username":`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Request body must be JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewRegisterHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/register", tt.body, 0, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			var body map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, body["error"])
				return
			}
			assert.Equal(t, "User registered successfully", body["message"])
			assert.Equal(t, "token", body["access_token"])
			profile := body["user"].(map[string]any)
			assert.Equal(t, "admin", profile["role"])
			assert.NotContains(t, profile, "password_hash")
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockLoginer(ctrl)

	mockSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, "", apperrors.Authentication("Invalid username or password"))
	rr := httptest.NewRecorder()
	NewLoginHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/login", `{"username":"a","password":"b"}`, 0, nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid username or password"}`, rr.Body.String())

	mockSvc.EXPECT().Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, p models.Payload) (*models.UserDB, string, error) {
			login, _ := p.String("username")
			assert.Equal(t, "alice", login)
			return &models.UserDB{ID: 1, Username: "alice"}, "token", nil
		})
	rr = httptest.NewRecorder()
	NewLoginHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/login", `{"username":"alice","password":"secret1"}`, 0, nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "token", resp.AccessToken)
}

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockMeGetter(ctrl)

	t.Run("no identity", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewMeHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/auth/me", "", 0, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("user gone", func(t *testing.T) {
		mockSvc.EXPECT().Me(gomock.Any(), int64(3)).Return(nil, apperrors.NotFound("User not found"))
		rr := httptest.NewRecorder()
		NewMeHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/auth/me", "", 3, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, rr.Body.String())
	})

	t.Run("profile", func(t *testing.T) {
		mockSvc.EXPECT().Me(gomock.Any(), int64(3)).Return(&models.UserDB{ID: 3, Username: "carol"}, nil)
		rr := httptest.NewRecorder()
		NewMeHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/auth/me", "", 3, nil))
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp UserResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "carol", resp.User.Username)
	})
}

func TestPasswordResetHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockPasswordResetter(ctrl)

	mockSvc.EXPECT().RequestPasswordReset(gomock.Any(), gomock.Any()).Return(nil)
	rr := httptest.NewRecorder()
	NewRequestPasswordResetHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/request-password-reset", `{"email":"x@y.com"}`, 0, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"If a user with that email exists, a password reset token has been sent."}`, rr.Body.String())

	mockSvc.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).Return(apperrors.Validation("Invalid or expired token"))
	rr = httptest.NewRecorder()
	NewResetPasswordHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/reset-password", `{"token":"t","password":"secret1"}`, 0, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, rr.Body.String())

	mockSvc.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).Return(nil)
	rr = httptest.NewRecorder()
	NewResetPasswordHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/reset-password", `{"token":"t","password":"secret1"}`, 0, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Password has been reset successfully."}`, rr.Body.String())
}
