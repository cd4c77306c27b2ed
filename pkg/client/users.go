package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

// SearchUsers matches usernames and emails. Admin only.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]api.User, error) {
	var users []api.User
	err := c.do(ctx, http.MethodGet, "/users/search?q="+url.QueryEscape(query), nil, &users, "")
	return users, err
}

func (c *Client) BanUser(ctx context.Context, userID string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(userID)+"/ban", nil, &resp, "")
	return resp, err
}

func (c *Client) UnbanUser(ctx context.Context, userID string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(userID)+"/unban", nil, &resp, "")
	return resp, err
}

func (c *Client) UpdateUserRole(ctx context.Context, userID string, role api.Role) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(userID)+"/role", api.RoleUpdate{Role: role}, &resp, "")
	return resp, err
}
