package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

func (c *Client) ListComments(ctx context.Context, episodeID string) ([]api.Comment, error) {
	var comments []api.Comment
	err := c.do(ctx, http.MethodGet, "/episodes/"+url.PathEscape(episodeID)+"/comments", nil, &comments, "")
	return comments, err
}

func (c *Client) CreateComment(ctx context.Context, input api.CommentInput) (api.Comment, error) {
	var comment api.Comment
	err := c.do(ctx, http.MethodPost, "/comments", input, &comment, "")
	return comment, err
}

// LikeComment toggles the caller's like; the response Action reports
// the direction.
func (c *Client) LikeComment(ctx context.Context, commentID string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPost, "/comments/"+url.PathEscape(commentID)+"/like", nil, &resp, "")
	return resp, err
}

// PinComment toggles the pinned flag. Admin only.
func (c *Client) PinComment(ctx context.Context, commentID string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPost, "/comments/"+url.PathEscape(commentID)+"/pin", nil, &resp, "")
	return resp, err
}

func (c *Client) UpdateComment(ctx context.Context, commentID string, input api.CommentInput) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPut, "/comments/"+url.PathEscape(commentID), input, &resp, "")
	return resp, err
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodDelete, "/comments/"+url.PathEscape(commentID), nil, &resp, "")
	return resp, err
}
