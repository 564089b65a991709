package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given subject.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// ValidateToken validates the provided access token string and extracts
	// the claims. Returns ErrExpiredToken when the token has expired and
	// ErrInvalidToken for any other validation failure (bad signature,
	// malformed structure, unexpected signing method).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified claims extracted from a token.
type Claims struct {
	// Subject is the authenticated username the token was issued for.
	Subject string `json:"sub,omitempty"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
}
