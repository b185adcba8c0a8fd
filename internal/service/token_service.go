package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

// TokenService resolves bearer tokens into identities through a verifier.
type TokenService struct {
	verifier model.TokenVerifier
	logger   *logger.Logger
}

func NewTokenService(verifier model.TokenVerifier, logger *logger.Logger) *TokenService {
	return &TokenService{verifier: verifier, logger: logger}
}

// GetIdentity returns model.ErrInvalidToken for rejected tokens and for tokens without a user.
func (s *TokenService) GetIdentity(ctx context.Context, token string) (model.Identity, error) {
	identity, err := s.verifier.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrInvalidToken) {
			s.logger.Debug("Token service: token rejected", "error", err.Error())
			return model.Identity{}, err
		}
		s.logger.Error("Token service: failed to verify token", "error", err.Error())
		return model.Identity{}, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	if identity.UserID == uuid.Nil {
		return model.Identity{}, fmt.Errorf("%w: empty user id", model.ErrInvalidToken)
	}

	return identity, nil
}
