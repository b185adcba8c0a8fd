package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/flashgen-server/internal/api/errors"
	"github.com/dtroode/flashgen-server/internal/api/http/response"
	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

// TokenService resolves identities from bearer tokens.
type TokenService interface {
	GetIdentity(ctx context.Context, token string) (model.Identity, error)
}

// AuthenticatedHandler serves a request on behalf of a verified caller.
type AuthenticatedHandler interface {
	ServeAuthenticated(w http.ResponseWriter, r *http.Request, identity model.Identity)
}

// AuthenticatedHandlerFunc adapts a function to AuthenticatedHandler.
type AuthenticatedHandlerFunc func(w http.ResponseWriter, r *http.Request, identity model.Identity)

func (f AuthenticatedHandlerFunc) ServeAuthenticated(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	f(w, r, identity)
}

// Authenticate validates bearer tokens before anything else runs.
type Authenticate struct {
	tokenService TokenService
	logger       *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, logger: logger}
}

// Wrap returns a handler that resolves the caller and passes it to next.
func (m *Authenticate) Wrap(next AuthenticatedHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, apiErr := m.authenticateUser(r)
		if apiErr != nil {
			response.Error(w, apiErr)
			return
		}

		next.ServeAuthenticated(w, r, identity)
	})
}

func (m *Authenticate) authenticateUser(r *http.Request) (model.Identity, *apiErrors.APIError) {
	tokenString, apiErr := bearerToken(r.Header.Get("Authorization"))
	if apiErr != nil {
		return model.Identity{}, apiErr
	}

	identity, err := m.tokenService.GetIdentity(r.Context(), tokenString)
	if err != nil {
		m.logger.Debug("Authenticate: token rejected", "error", err)
		return model.Identity{}, apiErrors.NewErrInvalidAuthorizationToken()
	}

	if identity.UserID == uuid.Nil {
		return model.Identity{}, apiErrors.NewErrInvalidAuthorizationToken()
	}

	return identity, nil
}

// bearerToken takes the credential after the scheme. No credential at all
// counts as missing; anything else that is not "Bearer <token>" is invalid.
func bearerToken(header string) (string, *apiErrors.APIError) {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return "", apiErrors.NewErrMissingAuthorizationToken()
	}
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", apiErrors.NewErrInvalidAuthorizationToken()
	}
	return parts[1], nil
}
