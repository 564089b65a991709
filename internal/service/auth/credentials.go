package auth

import (
	"crypto/subtle"

	"github.com/taskdeck/taskdeck-api/internal/config"
)

// CredentialStore checks submitted credentials against the single
// administrator credential configured at startup. The password is held only
// as a bcrypt hash.
type CredentialStore struct {
	username     string
	passwordHash string
	verifier     PasswordVerifier
}

// NewCredentialStore creates a CredentialStore from the auth configuration.
// If verifier is nil, a bcrypt verifier is used.
func NewCredentialStore(cfg config.AuthConfig, verifier PasswordVerifier) *CredentialStore {
	if verifier == nil {
		verifier = NewBcryptVerifier()
	}

	return &CredentialStore{
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
		verifier:     verifier,
	}
}

// Verify returns nil when username and password match the configured
// credential, and ErrInvalidCredentials otherwise. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (c *CredentialStore) Verify(username, password string) error {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1

	// Always run the password comparison so a mismatching username does not
	// return measurably faster than a mismatching password.
	passwordErr := c.verifier.Compare(c.passwordHash, password)

	if !usernameMatch || passwordErr != nil {
		return ErrInvalidCredentials
	}

	return nil
}
