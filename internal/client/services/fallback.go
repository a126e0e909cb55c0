package services

import (
	"context"
	"errors"

	"github.com/lookdine/lookdine/internal/client/api"
	"github.com/lookdine/lookdine/internal/client/models"
	"github.com/lookdine/lookdine/internal/logging"
)

// FallbackProvider tries the remote provider first and substitutes the local
// mock when it fails. Signup and login fall back on any remote failure,
// mirroring the single real-attempt-then-mock behavior of the client; verify
// falls back only when the server is unreachable, so a definitive rejection
// still invalidates the session. Refresh and logout have no local substitute.
type FallbackProvider struct {
	remote AuthProvider
	local  AuthProvider
	log    logging.Logger
}

func NewFallbackProvider(remote, local AuthProvider, log logging.Logger) *FallbackProvider {
	return &FallbackProvider{remote: remote, local: local, log: log}
}

func (p *FallbackProvider) Signup(ctx context.Context, data models.SignupData) (*models.User, string, error) {
	user, token, err := p.remote.Signup(ctx, data)
	if err != nil {
		p.log.Warn(ctx, "remote signup failed, using local fallback", "error", err)
		return p.local.Signup(ctx, data)
	}
	return user, token, nil
}

func (p *FallbackProvider) Login(ctx context.Context, creds models.Credentials) (*models.User, string, error) {
	user, token, err := p.remote.Login(ctx, creds)
	if err != nil {
		p.log.Warn(ctx, "remote login failed, using local fallback", "error", err)
		return p.local.Login(ctx, creds)
	}
	return user, token, nil
}

func (p *FallbackProvider) Logout(ctx context.Context) error {
	return p.remote.Logout(ctx)
}

func (p *FallbackProvider) Refresh(ctx context.Context) (string, error) {
	return p.remote.Refresh(ctx)
}

func (p *FallbackProvider) Verify(ctx context.Context) error {
	err := p.remote.Verify(ctx)
	if errors.Is(err, api.ErrUnavailable) {
		p.log.Warn(ctx, "verify endpoint unreachable, trusting local data")
		return p.local.Verify(ctx)
	}
	return err
}
