// Package identity resolves bearer tokens by asking the identity provider.
package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	auth "github.com/supabase-community/auth-go"

	"github.com/dtroode/flashgen-server/internal/model"
)

const authPath = "/auth/v1"

var _ model.TokenVerifier = (*Client)(nil)

// Client asks the provider's user endpoint who owns the presented token.
type Client struct {
	auth auth.Client
}

// NewClient creates an introspection client for the provider at baseURL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		auth: auth.New("", apiKey).WithCustomAuthURL(strings.TrimRight(baseURL, "/") + authPath),
	}
}

// Verify returns the identity owning token. Any failure to resolve the user
// means the token is invalid. The auth client is not context aware, so ctx
// is only checked before the call.
func (c *Client) Verify(ctx context.Context, token string) (model.Identity, error) {
	if err := ctx.Err(); err != nil {
		return model.Identity{}, err
	}

	user, err := c.auth.WithToken(token).GetUser()
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
	if user == nil || user.ID == uuid.Nil {
		return model.Identity{}, fmt.Errorf("%w: provider returned no user", model.ErrInvalidToken)
	}

	return model.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}
