package token

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/flashgen-server/internal/model"
)

// Claims represents the claims of identity-provider access tokens.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

var _ model.TokenVerifier = (*JWT)(nil)

// JWT verifies access tokens locally, without calling the identity provider.
type JWT struct {
	keyFunc  jwt.Keyfunc
	methods  []string
	audience string
}

// NewHMAC creates a verifier for tokens signed with a shared HS256 secret.
func NewHMAC(secret, audience string) *JWT {
	return &JWT{
		keyFunc: func(*jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		methods:  []string{jwt.SigningMethodHS256.Alg()},
		audience: audience,
	}
}

// NewPublicKey creates a verifier for tokens signed with an asymmetric key.
// pemKey holds an RSA or ECDSA public key.
func NewPublicKey(pemKey, audience string) (*JWT, error) {
	if rsaKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemKey)); err == nil {
		return &JWT{
			keyFunc:  func(*jwt.Token) (interface{}, error) { return rsaKey, nil },
			methods:  []string{jwt.SigningMethodRS256.Alg()},
			audience: audience,
		}, nil
	}

	ecKey, err := jwt.ParseECPublicKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return &JWT{
		keyFunc:  func(*jwt.Token) (interface{}, error) { return ecKey, nil },
		methods:  []string{jwt.SigningMethodES256.Alg()},
		audience: audience,
	}, nil
}

// Verify validates signature, expiry and audience and returns the token subject.
func (j *JWT) Verify(_ context.Context, tokenString string) (model.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(j.methods),
		jwt.WithExpirationRequired(),
	}
	if j.audience != "" {
		opts = append(opts, jwt.WithAudience(j.audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, j.keyFunc, opts...)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.Identity{}, model.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: subject is not a user id", model.ErrInvalidToken)
	}

	return model.Identity{UserID: userID, Email: claims.Email, Role: claims.Role}, nil
}
