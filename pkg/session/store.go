// Package session holds the client-side session: the bearer token, the
// current user record, and the capability flags derived from it. The
// store owns the persisted token and the client's bearer state; views
// only read.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
	"github.com/VorteXchange1987/kinea-1/pkg/client"
)

// ErrAuthBusy rejects a credential mutation started while another one
// is still resolving. Callers retry after the first one settles.
var ErrAuthBusy = errors.New("başka bir oturum işlemi devam ediyor")

// ErrSuperseded reports that a credential mutation resolved after the
// session had already moved on (a logout raced it); its result was
// discarded.
var ErrSuperseded = errors.New("oturum işlemi geçersiz kaldı")

// Store is the session store. A zero token/user pair is the logged-out
// state; Loading is true from construction until the first Bootstrap
// completes.
type Store struct {
	client *client.Client
	tokens TokenStore
	ip     *IPLookup
	log    zerolog.Logger

	mu       sync.Mutex
	token    string
	user     *api.User
	loading  bool
	inFlight bool
	gen      uint64
}

type Option func(*Store)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithIPLookup replaces the default public-IP lookup.
func WithIPLookup(lookup *IPLookup) Option {
	return func(s *Store) { s.ip = lookup }
}

// WithoutIPLookup disables the public-IP lookup entirely.
func WithoutIPLookup() Option {
	return func(s *Store) { s.ip = nil }
}

// NewStore builds a session store around the given API client and token
// persistence. The store starts in the loading state; call Bootstrap
// once at startup.
func NewStore(c *client.Client, tokens TokenStore, opts ...Option) *Store {
	s := &Store{
		client:  c,
		tokens:  tokens,
		ip:      NewIPLookup(""),
		log:     zerolog.Nop(),
		loading: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bootstrap restores the session from the persisted token by validating
// it against the backend. Any failure (missing token, network error,
// rejection) resolves to the logged-out state; Bootstrap never leaves
// a partial session and always clears the loading flag.
func (s *Store) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	token, err := s.tokens.Load()
	if err != nil || token == "" {
		if err != nil {
			s.log.Warn().Err(err).Msg("token load failed")
		}
		s.clearLocked()
		s.loading = false
		s.mu.Unlock()
		return
	}
	s.token = token
	s.client.SetToken(token)
	gen := s.gen
	s.mu.Unlock()

	user, fetchErr := s.client.Me(ctx)
	s.applyFetch(gen, user, fetchErr)
}

// Refresh re-fetches the current user record with the in-memory token,
// picking up server-side changes (role updates, profile edits). A
// failed refresh is an implicit logout, same as Bootstrap.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	gen := s.gen
	if token == "" {
		s.clearLocked()
		s.loading = false
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	user, err := s.client.Me(ctx)
	s.applyFetch(gen, user, err)
}

// applyFetch lands the result of a Bootstrap/Refresh fetch, unless a
// credential mutation changed the session underneath it.
func (s *Store) applyFetch(gen uint64, user api.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		s.loading = false
		return
	}
	s.loading = false

	if err != nil {
		s.log.Info().Err(err).Msg("session validation failed, logging out")
		s.clearLocked()
		return
	}
	s.user = &user
}

// Login submits credentials and, on success, installs and persists the
// returned session. Failures leave the session untouched and surface
// the backend's user-facing message.
func (s *Store) Login(ctx context.Context, email, password string) (*api.User, error) {
	gen, err := s.beginCredentialOp()
	if err != nil {
		return nil, err
	}
	defer s.endCredentialOp()

	req := api.LoginRequest{Email: email, Password: password}
	if ip := s.lookupIP(ctx); ip != "" {
		req.IPAddress = &ip
	}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.commit(gen, resp)
}

// Register validates the form locally first, so a non-Gmail address or
// a short password never reaches the network, then submits and installs
// the new session like Login.
func (s *Store) Register(ctx context.Context, username, email, password string) (*api.User, error) {
	if err := ValidateRegistration(username, email, password); err != nil {
		return nil, err
	}

	gen, err := s.beginCredentialOp()
	if err != nil {
		return nil, err
	}
	defer s.endCredentialOp()

	req := api.RegisterRequest{Username: username, Email: email, Password: password}
	if ip := s.lookupIP(ctx); ip != "" {
		req.IPAddress = &ip
	}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.commit(gen, resp)
}

// Logout drops the token and user from memory and durable storage. It
// needs no network call, always succeeds, and is idempotent. Any
// in-flight login, register, bootstrap or refresh result is discarded
// when it lands.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.loading = false
	s.clearLocked()
}

// clearLocked resets the credential state. Callers hold s.mu.
func (s *Store) clearLocked() {
	s.token = ""
	s.user = nil
	s.client.ClearToken()
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("token clear failed")
	}
}

func (s *Store) beginCredentialOp() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return 0, ErrAuthBusy
	}
	s.inFlight = true
	return s.gen, nil
}

func (s *Store) endCredentialOp() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// commit installs a successful auth response unless the session moved
// on (a logout bumped the generation) while the request was in flight.
func (s *Store) commit(gen uint64, resp api.AuthResponse) (*api.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		return nil, ErrSuperseded
	}
	s.gen++

	if err := s.tokens.Save(resp.Token); err != nil {
		s.log.Warn().Err(err).Msg("token persist failed")
	}
	s.token = resp.Token
	user := resp.User
	s.user = &user
	s.loading = false
	s.client.SetToken(resp.Token)

	copied := user
	return &copied, nil
}

func (s *Store) lookupIP(ctx context.Context) string {
	if s.ip == nil {
		return ""
	}
	return s.ip.Lookup(ctx)
}

// Token returns the current bearer token, or "".
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns a copy of the current user record, or nil when logged
// out.
func (s *Store) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// Loading reports whether the startup bootstrap is still resolving.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Capabilities derives the capability flags from the current user. The
// flags are recomputed on every call and never stored.
func (s *Store) Capabilities() api.Capabilities {
	return api.CapabilitiesOf(s.User())
}
