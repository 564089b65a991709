// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/platform/logger"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	credentials *auth.CredentialStore
	jwtService  auth.JWTService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	credentials *auth.CredentialStore,
	jwtService auth.JWTService,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}

	return &AuthHandler{
		credentials: credentials,
		jwtService:  jwtService,
		logger:      log.With(slog.String("component", "auth_handler")),
	}
}

// Login handles the POST /login endpoint. It accepts the credential as form
// fields and returns a bearer token on success. The password is never logged.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if err := h.credentials.Verify(username, password); err != nil {
		log.Debug("login rejected", slog.String("username", username))
		shared.RespondWithError(w, r, http.StatusUnauthorized, GetSafeErrorMessage(err))
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), username)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	log.Info("login succeeded", slog.String("username", username))
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{AccessToken: token})
}
