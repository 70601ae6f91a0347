package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		mockSetup      func(m *MockLimiter)
		expectedStatus int
		expectNext     bool
		remaining      string
	}{
		{
			name:   "under limit",
			method: http.MethodGet,
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().Hit(gomock.Any(), "10.0.0.1").Return(int64(3), nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
			remaining:      "2",
		},
		{
			name:   "at limit",
			method: http.MethodPost,
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().Hit(gomock.Any(), "10.0.0.1").Return(int64(5), nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
			remaining:      "0",
		},
		{
			name:   "over limit",
			method: http.MethodGet,
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().Hit(gomock.Any(), "10.0.0.1").Return(int64(6), nil)
			},
			expectedStatus: http.StatusTooManyRequests,
			remaining:      "0",
		},
		{
			name:   "limiter failure fails open",
			method: http.MethodGet,
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().Hit(gomock.Any(), "10.0.0.1").Return(int64(0), errors.New("redis down"))
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "options exempt",
			method:         http.MethodOptions,
			mockSetup:      func(m *MockLimiter) {},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			limiter := NewMockLimiter(ctrl)
			tt.mockSetup(limiter)

			nextCalled := false
			handler := RateLimitMiddleware(limiter, 5)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			}))

			req := httptest.NewRequest(tt.method, "/todos", nil)
			req.RemoteAddr = "10.0.0.1:51234"
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			assert.Equal(t, tt.remaining, rr.Header().Get("X-RateLimit-Remaining"))
			if tt.expectedStatus == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"error":"Too many requests"}`, rr.Body.String())
			}
		})
	}
}
