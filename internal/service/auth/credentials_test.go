package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskdeck/taskdeck-api/internal/config"
)

func newTestCredentialStore(t *testing.T) *CredentialStore {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewCredentialStore(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 30,
		AdminUsername:        "admin",
		AdminPasswordHash:    string(hash),
	}, nil)
}

func TestCredentialStore_Verify(t *testing.T) {
	t.Parallel()

	store := newTestCredentialStore(t)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "correct credentials", username: "admin", password: "password", wantErr: nil},
		{name: "wrong password", username: "admin", password: "wrong", wantErr: ErrInvalidCredentials},
		{name: "unknown username", username: "root", password: "password", wantErr: ErrInvalidCredentials},
		{name: "both wrong", username: "root", password: "wrong", wantErr: ErrInvalidCredentials},
		{name: "empty credentials", username: "", password: "", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := store.Verify(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
