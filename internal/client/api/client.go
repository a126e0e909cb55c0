// Package api contains the transport layer of the LookDine client: a
// transport-agnostic API contract (see the Client interface) and a concrete
// HTTP implementation that attaches the bearer token, classifies response
// statuses and maps them to sentinel errors.
package api

import (
	"context"

	"github.com/lookdine/lookdine/internal/client/models"
)

// Client is the API surface the services depend on.
//
// Login/Signup return the authenticated user together with the issued token.
// Verify returns nil for a valid token, ErrSessionExpired/an *APIError for a
// definitive rejection, and ErrUnavailable when the server is unreachable.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.User, string, error)
	Signup(ctx context.Context, data models.SignupData) (*models.User, string, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) (string, error)
	Verify(ctx context.Context) error
	Search(ctx context.Context, q models.SearchQuery) ([]models.Venue, error)
	Ping(ctx context.Context) error

	// SetToken replaces the bearer token attached to subsequent requests.
	// An empty string detaches it.
	SetToken(token string)
}
