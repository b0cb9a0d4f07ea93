package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// User is the upstream user record.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

// LoginResponse is the success body of the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// Login exchanges credentials for a bearer token and the authenticated
// user record.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/users/login", "", loginRequest{
		Username: username,
		Password: password,
	}, &out)
	return out, err
}

// Register creates a new account. It does not authenticate; callers log in
// separately afterwards.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.do(ctx, http.MethodPost, "/users", "", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, nil)
}

// Me resolves the bearer token to the user record it belongs to.
func (c *Client) Me(ctx context.Context, token string) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &out)
	return out, err
}

// UpdateRole changes the authenticated user's role and returns the updated
// record.
func (c *Client) UpdateRole(ctx context.Context, token, role string) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPatch, "/users/role", token, updateRoleRequest{Role: role}, &out)
	return out, err
}
