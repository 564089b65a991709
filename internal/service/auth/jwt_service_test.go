package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/config"
)

const testSecret = "test-secret-key-that-is-at-least-32-characters"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 30,
		AdminUsername:        "admin",
		AdminPasswordHash:    "unused",
	}
}

func newTestJWTService(t *testing.T, timeFunc func() time.Time) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	hmacSvc, ok := svc.(*hmacJWTService)
	require.True(t, ok)

	if timeFunc != nil {
		hmacSvc.timeFunc = timeFunc
	}
	return hmacSvc
}

func TestNewJWTService_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.JWTSecret = "too-short"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, nil)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt, time.Minute)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	issued := time.Now()

	svc := newTestJWTService(t, func() time.Time { return issued })
	token, err := svc.GenerateToken(ctx, "admin")
	require.NoError(t, err)

	// Move the verifier's clock past the 30-minute lifetime.
	svc.timeFunc = func() time.Time { return issued.Add(31 * time.Minute) }

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, nil)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "admin")
	require.NoError(t, err)

	// Flip a byte in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ValidateToken(ctx, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	svc := newTestJWTService(t, nil)
	token, err := svc.GenerateToken(ctx, "admin")
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "a-different-secret-also-32-characters-long"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	_, err = other.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "two segments", token: "abc.def"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.ValidateToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
