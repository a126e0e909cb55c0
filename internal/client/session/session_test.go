package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lookdine/lookdine/internal/client/api"
	"github.com/lookdine/lookdine/internal/client/models"
	"github.com/lookdine/lookdine/internal/client/services"
	"github.com/lookdine/lookdine/internal/client/store"
	"github.com/lookdine/lookdine/internal/common"
	"github.com/lookdine/lookdine/internal/logging"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	m map[string][]byte
}

var _ store.Store = (*memStore)(nil)

func newMemStore() *memStore { return &memStore{m: make(map[string][]byte)} }

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.m[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.m[key] = append([]byte(nil), value...)
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.m, key)
	return nil
}

func (s *memStore) Clear(_ context.Context) error {
	s.m = make(map[string][]byte)
	return nil
}

func (s *memStore) Close() error { return nil }

// scriptedProvider implements services.AuthProvider.
type scriptedProvider struct {
	user      *models.User
	token     string
	loginErr  error
	logoutErr error
	verifyErr error
}

func (p *scriptedProvider) Signup(context.Context, models.SignupData) (*models.User, string, error) {
	return p.user, p.token, nil
}

func (p *scriptedProvider) Login(context.Context, models.Credentials) (*models.User, string, error) {
	if p.loginErr != nil {
		return nil, "", p.loginErr
	}
	return p.user, p.token, nil
}

func (p *scriptedProvider) Logout(context.Context) error   { return p.logoutErr }
func (p *scriptedProvider) Refresh(context.Context) (string, error) { return p.token, nil }
func (p *scriptedProvider) Verify(context.Context) error   { return p.verifyErr }

type tokenRecorder struct {
	token string
}

func (r *tokenRecorder) SetToken(token string) { r.token = token }

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newSession(st store.Store, provider services.AuthProvider) (*Session, *tokenRecorder) {
	log := discardLogger()
	sink := &tokenRecorder{}
	auth := services.NewAuthService(provider, st, log)
	return New(auth, st, sink, log), sink
}

func seedStored(t *testing.T, st store.Store, user models.User, token string) {
	t.Helper()
	ctx := context.Background()
	raw, err := json.Marshal(user)
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, store.KeyUser, raw))
	require.NoError(t, st.Set(ctx, store.KeyToken, []byte(token)))
}

func TestInit_EmptyStoreLeavesUnauthenticated(t *testing.T) {
	s, _ := newSession(newMemStore(), &scriptedProvider{})

	require.NoError(t, s.Init(context.Background()))
	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.Token())
}

func TestInit_ValidStoredPairAdopted(t *testing.T) {
	st := newMemStore()
	seedStored(t, st, models.User{ID: "1", Name: "John Doe", Email: "user@example.com"}, "tok-1")

	s, sink := newSession(st, &scriptedProvider{})
	require.NoError(t, s.Init(context.Background()))

	require.True(t, s.IsAuthenticated())
	require.Equal(t, "tok-1", s.Token())
	require.Equal(t, "1", s.User().ID)
	require.Equal(t, "tok-1", sink.token)
}

func TestInit_RejectedTokenClearsStoredPair(t *testing.T) {
	st := newMemStore()
	seedStored(t, st, models.User{ID: "1"}, "stale")

	s, sink := newSession(st, &scriptedProvider{verifyErr: api.ErrSessionExpired})
	require.NoError(t, s.Init(context.Background()))

	require.False(t, s.IsAuthenticated())
	require.Empty(t, sink.token)

	raw, err := st.Get(context.Background(), store.KeyToken)
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestInit_UnreachableServerTrustsStoredPair(t *testing.T) {
	st := newMemStore()
	seedStored(t, st, models.User{ID: "1"}, "tok-1")

	verifyErr := fmt.Errorf("%w: dial tcp", api.ErrUnavailable)
	s, _ := newSession(st, &scriptedProvider{verifyErr: verifyErr})
	require.NoError(t, s.Init(context.Background()))

	require.True(t, s.IsAuthenticated())
}

func TestInit_CorruptStoredUserClearedAndTreatedAsAbsent(t *testing.T) {
	st := newMemStore()
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, store.KeyUser, []byte("{broken")))
	require.NoError(t, st.Set(ctx, store.KeyToken, []byte("tok")))

	s, _ := newSession(st, &scriptedProvider{})
	require.NoError(t, s.Init(ctx))

	require.False(t, s.IsAuthenticated())
	for _, key := range []string{store.KeyUser, store.KeyToken} {
		raw, err := st.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, raw)
	}
}

func TestLogin_AdoptsAndPersistsPair(t *testing.T) {
	st := newMemStore()
	provider := &scriptedProvider{
		user:  &models.User{ID: "7", Name: "Ann", Email: "ann@example.com"},
		token: "tok-7",
	}
	s, sink := newSession(st, provider)

	var changes int
	s.SetOnChange(func() { changes++ })

	err := s.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "tok-7", sink.token)
	require.Empty(t, s.LastError())
	require.Positive(t, changes)

	// storage mirrors session state
	rawToken, err := st.Get(context.Background(), store.KeyToken)
	require.NoError(t, err)
	require.Equal(t, "tok-7", string(rawToken))

	rawUser, err := st.Get(context.Background(), store.KeyUser)
	require.NoError(t, err)
	var stored models.User
	require.NoError(t, json.Unmarshal(rawUser, &stored))
	require.Equal(t, s.User().ID, stored.ID)
}

func TestLogin_FailureRecordsErrorAndRethrows(t *testing.T) {
	s, _ := newSession(newMemStore(), &scriptedProvider{loginErr: common.ErrInvalidCredentials})

	err := s.Login(context.Background(), models.Credentials{Email: "x", Password: "y"})
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.False(t, s.IsAuthenticated())
	require.Contains(t, s.LastError(), "invalid credentials")
	require.False(t, s.Loading())
}

func TestLogout_ClearsStateEvenWhenRemoteFails(t *testing.T) {
	st := newMemStore()
	provider := &scriptedProvider{
		user:      &models.User{ID: "7"},
		token:     "tok-7",
		logoutErr: errors.New("network down"),
	}
	s, sink := newSession(st, provider)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, models.Credentials{Email: "a", Password: "b"}))
	require.True(t, s.IsAuthenticated())

	require.NoError(t, s.Logout(ctx))
	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.Token())
	require.Empty(t, sink.token)

	for _, key := range []string{store.KeyUser, store.KeyToken} {
		raw, err := st.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, raw)
	}
}

func TestSignup_AdoptsPersistedPair(t *testing.T) {
	st := newMemStore()
	provider := &scriptedProvider{
		user:  &models.User{ID: "9", Name: "Jane", Email: "jane@example.com"},
		token: "tok-9",
	}
	s, sink := newSession(st, provider)

	err := s.Signup(context.Background(), models.SignupData{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "tok-9", s.Token())
	require.Equal(t, "tok-9", sink.token)
}

func TestExpire_DropsPairAndClearsStorage(t *testing.T) {
	st := newMemStore()
	provider := &scriptedProvider{user: &models.User{ID: "7"}, token: "tok-7"}
	s, sink := newSession(st, provider)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, models.Credentials{Email: "a", Password: "b"}))

	s.Expire(ctx)
	require.False(t, s.IsAuthenticated())
	require.Equal(t, "session expired", s.LastError())
	require.Empty(t, sink.token)

	for _, key := range []string{store.KeyUser, store.KeyToken} {
		raw, err := st.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, raw)
	}
}

// A 401 on an authenticated request must leave both the session and the
// store without credentials, so the rejected token cannot be re-adopted on
// the next startup.
func TestExpire_UnauthorizedRequestClearsStoredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	st := newMemStore()
	ctx := context.Background()
	seedStored(t, st, models.User{ID: "1", Name: "John Doe"}, "tok-123")

	log := discardLogger()
	var s *Session
	client := api.NewHTTPClient(srv.URL, time.Second, func() {
		s.Expire(context.Background())
	})
	auth := services.NewAuthService(services.NewRemoteProvider(client), st, log)
	s = New(auth, st, client, log)

	s.mu.Lock()
	s.user = &models.User{ID: "1", Name: "John Doe"}
	s.token = "tok-123"
	s.mu.Unlock()
	client.SetToken("tok-123")

	_, err := client.Search(ctx, models.SearchQuery{Query: "coffee"})
	require.ErrorIs(t, err, api.ErrSessionExpired)
	require.False(t, s.IsAuthenticated())

	for _, key := range []string{store.KeyToken, store.KeyUser} {
		raw, err := st.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, raw)
	}
}
