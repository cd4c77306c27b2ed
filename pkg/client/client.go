// Package client implements the HTTP client for the kinea backend
// contract. Every call takes a context and returns either the decoded
// response or an *APIError carrying the backend's user-facing detail.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
)

const defaultTimeout = 15 * time.Second

// genericFailure is the fallback detail when the backend returns an
// error without a usable payload.
const genericFailure = "İstek başarısız"

// APIError is a non-2xx backend response.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Detail)
}

// Client talks to one kinea backend. The bearer token is set and
// cleared by the session store; all other callers only read it.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client for the backend at baseURL. The /api prefix is
// appended if missing.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(baseURL, "/api") {
		baseURL += "/api"
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do runs one JSON request. body and out may be nil; fallback is the
// detail used when an error response has no decodable payload.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, fallback string) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.apiError(resp, fallback)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("X-Request-Id", ksuid.New().String())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) apiError(resp *http.Response, fallback string) error {
	if fallback == "" {
		fallback = genericFailure
	}
	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: fallback}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(raw, &payload) == nil && payload.Detail != "" {
			apiErr.Detail = payload.Detail
		}
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Str("detail", apiErr.Detail).
		Msg("api error response")
	return apiErr
}
