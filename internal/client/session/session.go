// Package session holds the client's current {user, token} pair for the
// lifetime of the process. The session is an explicitly constructed object
// injected into the UI layer; it mirrors its state into the local store and
// the two must never diverge beyond the window of a single update.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/lookdine/lookdine/internal/client/api"
	"github.com/lookdine/lookdine/internal/client/models"
	"github.com/lookdine/lookdine/internal/client/services"
	"github.com/lookdine/lookdine/internal/client/store"
	"github.com/lookdine/lookdine/internal/logging"
)

// TokenSink receives the current bearer token; the API client implements it.
type TokenSink interface {
	SetToken(token string)
}

// Session is safe for use from multiple goroutines.
type Session struct {
	auth   services.AuthService
	store  store.Store
	tokens TokenSink
	log    logging.Logger

	mu       sync.Mutex
	user     *models.User
	token    string
	loading  bool
	lastErr  string
	onChange func()
}

func New(auth services.AuthService, st store.Store, tokens TokenSink, log logging.Logger) *Session {
	return &Session{auth: auth, store: st, tokens: tokens, log: log}
}

// SetOnChange registers a callback invoked after every state mutation.
func (s *Session) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Session) notify() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Init restores the session from the local store, once, at startup. A stored
// pair is verified against the server before being adopted: a definitive
// rejection clears it, while an unreachable server leaves the stored pair
// trusted so the client stays usable offline. Corrupt stored data is treated
// as absent and removed.
func (s *Session) Init(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	rawUser, err := s.store.Get(ctx, store.KeyUser)
	if err != nil {
		return err
	}
	rawToken, err := s.store.Get(ctx, store.KeyToken)
	if err != nil {
		return err
	}
	if rawUser == nil || rawToken == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		s.log.Warn(ctx, "stored user is unreadable, clearing authentication data", "error", err)
		return s.clearStored(ctx)
	}

	// The token must be attached before verification so the request
	// carries it.
	s.tokens.SetToken(string(rawToken))

	if err := s.auth.VerifyToken(ctx); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			s.log.Warn(ctx, "token verification unavailable, trusting stored session")
		} else {
			s.log.Warn(ctx, "stored token rejected, clearing authentication data", "error", err)
			s.tokens.SetToken("")
			return s.clearStored(ctx)
		}
	}

	s.mu.Lock()
	s.user = &user
	s.token = string(rawToken)
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *Session) clearStored(ctx context.Context) error {
	if err := s.store.Delete(ctx, store.KeyUser); err != nil {
		return err
	}
	return s.store.Delete(ctx, store.KeyToken)
}

// Login authenticates and adopts the resulting pair. The error is re-thrown
// for caller handling after the last error message has been recorded.
func (s *Session) Login(ctx context.Context, creds models.Credentials) error {
	s.setLoading(true)
	defer s.setLoading(false)

	user, token, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		s.notify()
		return err
	}

	s.adopt(user, token)
	return nil
}

// Signup registers a new account and adopts the resulting session.
func (s *Session) Signup(ctx context.Context, data models.SignupData) error {
	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.auth.Signup(ctx, data)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		s.notify()
		return err
	}

	rawToken, err := s.store.Get(ctx, store.KeyToken)
	if err != nil {
		return err
	}
	s.adopt(user, string(rawToken))
	return nil
}

func (s *Session) adopt(user *models.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	s.lastErr = ""
	s.mu.Unlock()
	s.tokens.SetToken(token)
	s.notify()
}

// Logout always ends the local session, regardless of the remote call's
// outcome.
func (s *Session) Logout(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	err := s.auth.Logout(ctx)

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	s.tokens.SetToken("")
	s.notify()
	return err
}

// Expire ends the session after the server rejected the current token. Both
// the in-memory pair and the stored one are dropped, so a restart cannot
// re-adopt a token the server already refused. No auth service call is made.
func (s *Session) Expire(ctx context.Context) {
	if err := s.clearStored(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear stored credentials on expiry", "error", err)
	}
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.lastErr = "session expired"
	s.mu.Unlock()
	s.tokens.SetToken("")
	s.notify()
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// User returns a copy of the current user, or nil.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
