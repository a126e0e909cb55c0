package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lookdine/lookdine/internal/client/models"
	"github.com/lookdine/lookdine/internal/client/store"
	"github.com/lookdine/lookdine/internal/logging"
)

// AuthService defines the authentication operations for the client.
//
// Contract:
//   - Signup: register, persist the resulting token/user, return the user.
//   - Login: authenticate, persist token/user, return both.
//   - Logout: best-effort remote notification, then unconditionally clear
//     the stored token and user.
//   - RefreshToken: obtain and persist a new token; a rejected refresh
//     fires the transport's unauthorized handler before the error returns.
//   - VerifyToken: nil means the current token is valid; api.ErrUnavailable
//     means indeterminate; anything else is a definitive rejection.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Signup(ctx context.Context, data models.SignupData) (*models.User, error)
	Login(ctx context.Context, creds models.Credentials) (*models.User, string, error)
	Logout(ctx context.Context) error
	RefreshToken(ctx context.Context) (string, error)
	VerifyToken(ctx context.Context) error
}

// authService is the concrete AuthService backed by an AuthProvider and the
// local store.
type authService struct {
	provider AuthProvider
	store    store.Store
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given provider and
// store.
func NewAuthService(provider AuthProvider, st store.Store, log logging.Logger) AuthService {
	return &authService{provider: provider, store: st, log: log}
}

// persistSession writes the token and the serialized user. The pair mirrors
// the in-memory session state; both keys are written back to back to keep
// the divergence window minimal.
func (a *authService) persistSession(ctx context.Context, user *models.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := a.store.Set(ctx, store.KeyToken, []byte(token)); err != nil {
		return err
	}
	return a.store.Set(ctx, store.KeyUser, raw)
}

func (a *authService) clearSession(ctx context.Context) error {
	if err := a.store.Delete(ctx, store.KeyToken); err != nil {
		return err
	}
	return a.store.Delete(ctx, store.KeyUser)
}

func (a *authService) Signup(ctx context.Context, data models.SignupData) (*models.User, error) {
	user, token, err := a.provider.Signup(ctx, data)
	if err != nil {
		return nil, err
	}
	if err := a.persistSession(ctx, user, token); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.User, string, error) {
	user, token, err := a.provider.Login(ctx, creds)
	if err != nil {
		return nil, "", err
	}
	if err := a.persistSession(ctx, user, token); err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout notifies the server and always clears the stored credentials, even
// when the remote call fails.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.provider.Logout(ctx); err != nil {
		a.log.Warn(ctx, "remote logout failed, clearing local session anyway", "error", err)
	}
	return a.clearSession(ctx)
}

func (a *authService) RefreshToken(ctx context.Context) (string, error) {
	token, err := a.provider.Refresh(ctx)
	if err != nil {
		return "", err
	}
	if err := a.store.Set(ctx, store.KeyToken, []byte(token)); err != nil {
		return "", err
	}
	return token, nil
}

func (a *authService) VerifyToken(ctx context.Context) error {
	return a.provider.Verify(ctx)
}
