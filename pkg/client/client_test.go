package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

func TestNewAppendsAPIPrefix(t *testing.T) {
	assert.Equal(t, "http://kinea.example/api", New("http://kinea.example").baseURL)
	assert.Equal(t, "http://kinea.example/api", New("http://kinea.example/").baseURL)
	assert.Equal(t, "http://kinea.example/api", New("http://kinea.example/api").baseURL)
}

func TestRequestDecoration(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode(api.User{ID: "u-1"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	c.SetToken("tok-1")

	_, err := c.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode([]api.Series{})
	}))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	_, err := c.ListSeries(context.Background())
	require.NoError(t, err)

	assert.False(t, sawAuth)
}

func TestAPIErrorCarriesBackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Detail: "Email veya şifre hatalı"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	_, err := c.Login(context.Background(), api.LoginRequest{Email: "a@gmail.com", Password: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Email veya şifre hatalı", apiErr.Detail)
	assert.Equal(t, "api: 401 Email veya şifre hatalı", apiErr.Error())
}

func TestAPIErrorFallsBackWhenPayloadUnusable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	_, err := c.Login(context.Background(), api.LoginRequest{Email: "a@gmail.com", Password: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Giriş başarısız", apiErr.Detail)
}

func TestClearToken(t *testing.T) {
	c := New("http://kinea.example")
	c.SetToken("tok")
	require.Equal(t, "tok", c.Token())

	c.ClearToken()
	assert.Empty(t, c.Token())
}
