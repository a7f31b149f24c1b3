// internal/adapters/backend/auth.go
package backend

import (
	"context"
	"net/http"

	"github.com/awidjaja/stokgate/internal/core/domain"
)

// Login establishes the upstream session. The access and refresh cookies
// land in the client's jar; nothing about the session is observable beyond
// subsequent auth-check responses.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) error {
	return c.do(ctx, http.MethodPost, "/api/user/login", nil, creds, nil)
}

// CheckSession asks the backend whether the current session is valid. Only
// a 2xx response counts as authenticated; everything else, including a
// completed error response, comes back as a non-nil error.
func (c *Client) CheckSession(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/user/auth-client", nil, nil, nil)
}

// Logout ends the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/user/logout", nil, nil, nil)
}

// LogoutAll revokes every session of the user.
func (c *Client) LogoutAll(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/user/logout-all", nil, nil, nil)
}
