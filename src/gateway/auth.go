package gateway

import (
	"context"
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/models"
)

// AuthGateway wraps the backend authentication endpoints.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway creates an auth gateway over the shared client.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login exchanges credentials for a bearer token. A 200 response
// without a token is a failure: some backend misconfigurations answer
// 200 with an empty body, and storing an empty credential would lock
// the admin into a redirect loop.
func (g *AuthGateway) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := g.client.do(ctx, http.MethodPost, "/auth/login", "", creds, &resp); err != nil {
		return "", classify(err, "Login failed. Please check your credentials.")
	}
	if resp.Token == "" {
		return "", &AuthError{Message: "No token received from server"}
	}
	return resp.Token, nil
}

// GetMe verifies the credential and returns the admin profile. A 401
// comes back as *AuthError so the session guard can tell a rejected
// credential apart from a flaky backend.
func (g *AuthGateway) GetMe(ctx context.Context, token string) (models.AdminProfile, error) {
	var profile models.AdminProfile
	if err := g.client.do(ctx, http.MethodGet, "/auth/me", token, nil, &profile); err != nil {
		return models.AdminProfile{}, classify(err, "Failed to fetch profile")
	}
	return profile, nil
}

// UpdateMe changes the admin login and/or password. Password
// confirmation matching is the caller's job; the gateway forwards
// whatever it is given.
func (g *AuthGateway) UpdateMe(ctx context.Context, token string, update models.ProfileUpdate) (models.AdminProfile, error) {
	var profile models.AdminProfile
	if err := g.client.do(ctx, http.MethodPatch, "/auth/me", token, update, &profile); err != nil {
		return models.AdminProfile{}, classify(err, "Failed to update profile")
	}
	return profile, nil
}
