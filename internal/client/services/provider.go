// Package services contains the application services of the LookDine client:
// authentication (remote provider, local mock provider and the fallback
// composition of the two) and chat-list housekeeping.
package services

import (
	"context"

	"github.com/lookdine/lookdine/internal/client/models"
)

// AuthProvider is one strategy for performing the authentication operations.
// Two implementations exist: RemoteProvider (the real HTTP API) and
// LocalProvider (the mock backed by the local store). FallbackProvider
// composes them, making the substitution boundary explicit.
type AuthProvider interface {
	Signup(ctx context.Context, data models.SignupData) (*models.User, string, error)
	Login(ctx context.Context, creds models.Credentials) (*models.User, string, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) (string, error)

	// Verify reports token validity: nil means valid, api.ErrUnavailable
	// means the question could not be answered, anything else is a
	// definitive rejection.
	Verify(ctx context.Context) error
}
