package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
)

// MockJWTService is a mock implementation of auth.JWTService
type MockJWTService struct {
	ValidateErr error
	Claims      *auth.Claims
}

// GenerateToken implements auth.JWTService.GenerateToken
func (m *MockJWTService) GenerateToken(ctx context.Context, subject string) (string, error) {
	return "mock-token", nil
}

// ValidateToken implements auth.JWTService.ValidateToken
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return m.Claims, m.ValidateErr
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		authHeader      string
		validateErr     error
		claims          *auth.Claims
		expectedStatus  int
		expectedSubject string
	}{
		{
			name:            "valid token",
			authHeader:      "Bearer valid-token",
			claims:          &auth.Claims{Subject: "admin"},
			expectedStatus:  http.StatusOK,
			expectedSubject: "admin",
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &MockJWTService{ValidateErr: tt.validateErr, Claims: tt.claims}
			authMiddleware := NewAuthMiddleware(jwtService)

			// The wrapped handler records whether it ran, and with which subject.
			handlerCalled := false
			var gotSubject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				gotSubject, _ = shared.GetSubject(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			authMiddleware.Authenticate(next).ServeHTTP(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.True(t, handlerCalled)
				assert.Equal(t, tt.expectedSubject, gotSubject)
			} else {
				// Rejected requests must never reach the handler.
				assert.False(t, handlerCalled)
				// Every failure cause gets the same message.
				assert.Contains(t, rec.Body.String(), "Invalid token")
			}
		})
	}
}
