package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/lookdine/lookdine/internal/client/models"
	"github.com/lookdine/lookdine/internal/client/store"
	"github.com/lookdine/lookdine/internal/logging"
)

// memStore is an in-memory store.Store for unit tests.
type memStore struct {
	m map[string][]byte
}

var _ store.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{m: make(map[string][]byte)}
}

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

// fakeProvider implements AuthProvider with scripted results.
type fakeProvider struct {
	SignupUser  *models.User
	SignupToken string
	SignupErr   error

	LoginUser  *models.User
	LoginToken string
	LoginErr   error

	LogoutErr  error
	RefreshRet string
	RefreshErr error
	VerifyErr  error

	LogoutCalls int

	LastSignupData models.SignupData
	LastLoginCreds models.Credentials
}

func (f *fakeProvider) Signup(_ context.Context, data models.SignupData) (*models.User, string, error) {
	f.LastSignupData = data
	return f.SignupUser, f.SignupToken, f.SignupErr
}

func (f *fakeProvider) Login(_ context.Context, creds models.Credentials) (*models.User, string, error) {
	f.LastLoginCreds = creds
	return f.LoginUser, f.LoginToken, f.LoginErr
}

func (f *fakeProvider) Logout(_ context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeProvider) Refresh(_ context.Context) (string, error) {
	return f.RefreshRet, f.RefreshErr
}

func (f *fakeProvider) Verify(_ context.Context) error {
	return f.VerifyErr
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
