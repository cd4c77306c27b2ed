package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
	"github.com/VorteXchange1987/kinea-1/pkg/client"
)

// memTokens is an in-memory TokenStore for tests.
type memTokens struct {
	token   string
	loadErr error
}

func (m *memTokens) Load() (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.token, nil
}

func (m *memTokens) Save(token string) error { m.token = token; return nil }
func (m *memTokens) Clear() error            { m.token = ""; return nil }

func testUser(role api.Role) api.User {
	return api.User{
		ID:        "u-1",
		Username:  "deniz",
		Email:     "deniz@gmail.com",
		Role:      role,
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// authBackend is a minimal stand-in for the API: one valid credential
// pair, one valid token.
type authBackend struct {
	mux       *http.ServeMux
	hits      atomic.Int64
	loginGate chan struct{} // when set, login blocks until closed

	mu   sync.Mutex
	user api.User
}

func (b *authBackend) currentUser() api.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.user
}

func (b *authBackend) setUser(u api.User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.user = u
}

func newAuthBackend(user api.User) *authBackend {
	b := &authBackend{mux: http.NewServeMux(), user: user}

	b.mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		b.hits.Add(1)
		if b.loginGate != nil {
			<-b.loginGate
		}

		u := b.currentUser()
		var req api.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != u.Email || req.Password != "correct-password" {
			writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Detail: "Email veya şifre hatalı"})
			return
		}
		writeJSON(w, http.StatusOK, api.AuthResponse{Token: "valid-token", User: u})
	})

	b.mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		b.hits.Add(1)
		writeJSON(w, http.StatusOK, api.AuthResponse{Token: "valid-token", User: b.currentUser()})
	})

	b.mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		b.hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer valid-token" {
			writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Detail: "Geçersiz token"})
			return
		}
		writeJSON(w, http.StatusOK, b.currentUser())
	})

	return b
}

func newTestStore(t *testing.T, backend *authBackend, tokens TokenStore) *Store {
	t.Helper()
	srv := httptest.NewServer(backend.mux)
	t.Cleanup(srv.Close)

	c := client.New(srv.URL, client.WithHTTPClient(srv.Client()))
	return NewStore(c, tokens, WithoutIPLookup())
}

func TestLoginInstallsSession(t *testing.T) {
	backend := newAuthBackend(testUser(api.RoleUser))
	tokens := &memTokens{}
	store := newTestStore(t, backend, tokens)

	store.Bootstrap(context.Background())
	require.False(t, store.Loading())
	require.Nil(t, store.User())

	user, err := store.Login(context.Background(), "deniz@gmail.com", "correct-password")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "valid-token", store.Token())
	assert.Equal(t, "valid-token", tokens.token, "token should be persisted")

	caps := store.Capabilities()
	assert.True(t, caps.IsAuthenticated)
	assert.False(t, caps.IsModerator)
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	backend := newAuthBackend(testUser(api.RoleUser))
	tokens := &memTokens{}
	store := newTestStore(t, backend, tokens)
	store.Bootstrap(context.Background())

	user, err := store.Login(context.Background(), "deniz@gmail.com", "wrong")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, "Email veya şifre hatalı", err.Error())

	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
	assert.False(t, store.Capabilities().IsAuthenticated)
}

func TestBootstrapRestoresPersistedSession(t *testing.T) {
	u := testUser(api.RoleModerator)
	backend := newAuthBackend(u)
	tokens := &memTokens{token: "valid-token"}
	store := newTestStore(t, backend, tokens)

	require.True(t, store.Loading(), "store starts loading")

	store.Bootstrap(context.Background())

	assert.False(t, store.Loading())
	require.NotNil(t, store.User())
	assert.Equal(t, u.ID, store.User().ID, "restored session belongs to the token's user")
	assert.True(t, store.Capabilities().IsModerator)
}

func TestBootstrapRejectedTokenLogsOut(t *testing.T) {
	backend := newAuthBackend(testUser(api.RoleUser))
	tokens := &memTokens{token: "stale-token"}
	store := newTestStore(t, backend, tokens)

	store.Bootstrap(context.Background())

	assert.False(t, store.Loading())
	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())
	assert.Empty(t, tokens.token, "rejected token should be cleared from storage")
}

func TestBootstrapWithoutTokenSkipsNetwork(t *testing.T) {
	backend := newAuthBackend(testUser(api.RoleUser))
	store := newTestStore(t, backend, &memTokens{})

	store.Bootstrap(context.Background())

	assert.False(t, store.Loading())
	assert.Nil(t, store.User())
	assert.Zero(t, backend.hits.Load(), "no token means no validation request")
}

// A role change on the server becomes visible after Refresh without a
// new login.
func TestRefreshPicksUpRoleChange(t *testing.T) {
	backend := newAuthBackend(testUser(api.RoleUser))
	tokens := &memTokens{token: "valid-token"}
	store := newTestStore(t, backend, tokens)

	store.Bootstrap(context.Background())
	require.False(t, store.Capabilities().IsModerator)

	backend.setUser(testUser(api.RoleModerator))
	store.Refresh(context.Background())

	assert.True(t, store.Capabilities().IsModerator)
	assert.False(t, store.Capabilities().IsAdmin)
}

// Register validates locally first: a non-Gmail address never reaches
// the network.
func TestRegisterValidatesBeforeNetwork(t *testing.T) {
	backend := newAuthBackend(testUser(api.RoleUser))
	store := newTestStore(t, backend, &memTokens{})
	store.Bootstrap(context.Background())

	_, err := store.Register(context.Background(), "deniz", "deniz@hotmail.com", "123456")
	require.ErrorIs(t, err, ErrNotGmail)
	assert.Zero(t, backend.hits.Load())

	_, err = store.Register(context.Background(), "dz", "deniz@gmail.com", "123456")
	require.ErrorIs(t, err, ErrUsernameLength)

	_, err = store.Register(context.Background(), "deniz", "deniz@gmail.com", "123")
	require.ErrorIs(t, err, ErrPasswordLength)
	assert.Zero(t, backend.hits.Load())
}

func TestRegisterSuccess(t *testing.T) {
	backend := newAuthBackend(testUser(api.RoleUser))
	tokens := &memTokens{}
	store := newTestStore(t, backend, tokens)
	store.Bootstrap(context.Background())

	user, err := store.Register(context.Background(), "deniz", "deniz@gmail.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "valid-token", tokens.token)
}

func TestLogoutIsIdempotent(t *testing.T) {
	backend := newAuthBackend(testUser(api.RoleUser))
	tokens := &memTokens{}
	store := newTestStore(t, backend, tokens)
	store.Bootstrap(context.Background())

	_, err := store.Login(context.Background(), "deniz@gmail.com", "correct-password")
	require.NoError(t, err)

	store.Logout()
	first := store.Capabilities()

	store.Logout()
	second := store.Capabilities()

	assert.Equal(t, first, second)
	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())
	assert.Empty(t, tokens.token)
}

func TestConcurrentCredentialOpRejected(t *testing.T) {
	backend := newAuthBackend(testUser(api.RoleUser))
	backend.loginGate = make(chan struct{})
	store := newTestStore(t, backend, &memTokens{})
	store.Bootstrap(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := store.Login(context.Background(), "deniz@gmail.com", "correct-password")
		done <- err
	}()

	// Wait for the first login to reach the backend.
	require.Eventually(t, func() bool { return backend.hits.Load() >= 1 },
		time.Second, 5*time.Millisecond)

	_, err := store.Login(context.Background(), "deniz@gmail.com", "correct-password")
	assert.ErrorIs(t, err, ErrAuthBusy)

	close(backend.loginGate)
	require.NoError(t, <-done)
}

// Logout while a login is in flight wins: the late login result is
// discarded and the session stays logged out.
func TestLogoutSupersedesInFlightLogin(t *testing.T) {
	backend := newAuthBackend(testUser(api.RoleUser))
	backend.loginGate = make(chan struct{})
	tokens := &memTokens{}
	store := newTestStore(t, backend, tokens)
	store.Bootstrap(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := store.Login(context.Background(), "deniz@gmail.com", "correct-password")
		done <- err
	}()

	require.Eventually(t, func() bool { return backend.hits.Load() >= 1 },
		time.Second, 5*time.Millisecond)

	store.Logout()
	close(backend.loginGate)

	err := <-done
	assert.ErrorIs(t, err, ErrSuperseded)
	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())
	assert.Empty(t, tokens.token)
}
