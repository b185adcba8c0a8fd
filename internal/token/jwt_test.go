package token

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/flashgen-server/internal/model"
)

func makeClaims(sub string, aud string, exp time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Audience:  jwt.ClaimStrings{aud},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Email: "learner@example.com",
		Role:  "authenticated",
	}
}

func signHS256(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWT_HMAC(t *testing.T) {
	userID := uuid.New()
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr bool
	}{
		{
			name:  "valid token",
			token: func(t *testing.T) string { return signHS256(t, "secret", makeClaims(userID.String(), "authenticated", future)) },
		},
		{
			name:    "wrong secret",
			token:   func(t *testing.T) string { return signHS256(t, "other", makeClaims(userID.String(), "authenticated", future)) },
			wantErr: true,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return signHS256(t, "secret", makeClaims(userID.String(), "authenticated", time.Now().Add(-time.Minute)))
			},
			wantErr: true,
		},
		{
			name:    "wrong audience",
			token:   func(t *testing.T) string { return signHS256(t, "secret", makeClaims(userID.String(), "anon", future)) },
			wantErr: true,
		},
		{
			name:    "subject is not a uuid",
			token:   func(t *testing.T) string { return signHS256(t, "secret", makeClaims("service-role", "authenticated", future)) },
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not.a.jwt" },
			wantErr: true,
		},
	}

	v := NewHMAC("secret", "authenticated")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := v.Verify(context.Background(), tt.token(t))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, id.UserID)
			assert.Equal(t, "learner@example.com", id.Email)
			assert.Equal(t, "authenticated", id.Role)
		})
	}
}

func TestJWT_RejectsAlgorithmSwitch(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemKey := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	v, err := NewPublicKey(pemKey, "")
	require.NoError(t, err)

	// HS256 signed with the public key bytes must not pass an RS256 verifier.
	forged := signHS256(t, pemKey, makeClaims(uuid.NewString(), "authenticated", time.Now().Add(time.Hour)))
	_, err = v.Verify(context.Background(), forged)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_PublicKeys(t *testing.T) {
	userID := uuid.New()
	claims := makeClaims(userID.String(), "authenticated", time.Now().Add(time.Hour))

	t.Run("rsa", func(t *testing.T) {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		require.NoError(t, err)

		v, err := NewPublicKey(string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})), "authenticated")
		require.NoError(t, err)

		signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
		require.NoError(t, err)

		id, err := v.Verify(context.Background(), signed)
		require.NoError(t, err)
		assert.Equal(t, userID, id.UserID)
	})

	t.Run("ecdsa", func(t *testing.T) {
		key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)
		der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		require.NoError(t, err)

		v, err := NewPublicKey(string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})), "authenticated")
		require.NoError(t, err)

		signed, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(key)
		require.NoError(t, err)

		id, err := v.Verify(context.Background(), signed)
		require.NoError(t, err)
		assert.Equal(t, userID, id.UserID)
	})

	t.Run("bad pem", func(t *testing.T) {
		_, err := NewPublicKey("nope", "")
		require.Error(t, err)
	})
}
