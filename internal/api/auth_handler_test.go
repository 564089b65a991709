package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, auth.JWTService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.AuthConfig{
		JWTSecret:            "test-secret-key-that-is-at-least-32-characters",
		TokenLifetimeMinutes: 30,
		AdminUsername:        "admin",
		AdminPasswordHash:    string(hash),
	}

	jwtService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	credentials := auth.NewCredentialStore(cfg, nil)
	return NewAuthHandler(credentials, jwtService, nil), jwtService
}

func postLogin(handler *AuthHandler, username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.Login(rec, req)
	return rec
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	t.Parallel()

	handler, jwtService := newTestAuthHandler(t)

	rec := postLogin(handler, "admin", "password")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)

	// The returned token must be usable against protected endpoints.
	claims, err := jwtService.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestAuthHandler_LoginFailure(t *testing.T) {
	t.Parallel()

	handler, _ := newTestAuthHandler(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "unknown user", username: "root", password: "password"},
		{name: "empty form", username: "", password: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := postLogin(handler, tt.username, tt.password)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Invalid credentials")
			assert.NotContains(t, rec.Body.String(), "access_token")
		})
	}
}
