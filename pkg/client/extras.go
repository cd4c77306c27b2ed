package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

// ToggleFavorite adds or removes a series from the caller's favorites;
// the response Action reports which happened.
func (c *Client) ToggleFavorite(ctx context.Context, seriesID string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPost, "/favorites/"+url.PathEscape(seriesID), nil, &resp, "")
	return resp, err
}

// ListFavorites returns the series the caller has favorited.
func (c *Client) ListFavorites(ctx context.Context) ([]api.Series, error) {
	var series []api.Series
	err := c.do(ctx, http.MethodGet, "/favorites", nil, &series, "")
	return series, err
}

func (c *Client) GetAds(ctx context.Context) (api.AdContent, error) {
	var ads api.AdContent
	err := c.do(ctx, http.MethodGet, "/ads", nil, &ads, "")
	return ads, err
}

func (c *Client) UpdateAds(ctx context.Context, content string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPut, "/ads", api.AdContentUpdate{Content: content}, &resp, "")
	return resp, err
}

// GetStats returns the platform totals. Admin only.
func (c *Client) GetStats(ctx context.Context) (api.Stats, error) {
	var stats api.Stats
	err := c.do(ctx, http.MethodGet, "/stats", nil, &stats, "")
	return stats, err
}

// UploadMedia uploads an image (avatar, poster, thumbnail) and returns
// its public URL.
func (c *Client) UploadMedia(ctx context.Context, filename, contentType string, r io.Reader) (api.UploadResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return api.UploadResponse{}, fmt.Errorf("multipart part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return api.UploadResponse{}, fmt.Errorf("copy upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return api.UploadResponse{}, fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/media/upload", &buf)
	if err != nil {
		return api.UploadResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return api.UploadResponse{}, fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return api.UploadResponse{}, c.apiError(resp, "Yükleme başarısız")
	}

	var out api.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return api.UploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}
	return out, nil
}
