package model

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// TokenVerifier resolves a bearer token into an Identity.
// Implementations return ErrInvalidToken for any token they reject.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
