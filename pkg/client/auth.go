package client

import (
	"context"
	"net/http"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

// Login exchanges credentials for a token and user record. The token is
// not applied to the client; that is the session store's decision.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp, "Giriş başarısız")
	return resp, err
}

// Register creates an account and returns its first token.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp, "Kayıt başarısız")
	return resp, err
}

// Me validates the current bearer token and returns the account behind
// it.
func (c *Client) Me(ctx context.Context) (api.User, error) {
	var user api.User
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user, "")
	return user, err
}

func (c *Client) UpdateProfilePhoto(ctx context.Context, photoURL string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPut, "/users/me/profile-photo", api.ProfilePhotoUpdate{ProfilePhotoURL: photoURL}, &resp, "")
	return resp, err
}

func (c *Client) UpdateUsername(ctx context.Context, username string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPut, "/users/me/username", api.UsernameUpdate{Username: username}, &resp, "")
	return resp, err
}

func (c *Client) UpdateEmail(ctx context.Context, email string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPut, "/users/me/email", api.EmailUpdate{Email: email}, &resp, "")
	return resp, err
}

func (c *Client) UpdatePassword(ctx context.Context, current, next string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	body := api.PasswordUpdate{CurrentPassword: current, NewPassword: next}
	err := c.do(ctx, http.MethodPut, "/users/me/password", body, &resp, "")
	return resp, err
}
