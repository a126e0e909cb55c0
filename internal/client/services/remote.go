package services

import (
	"context"

	"github.com/lookdine/lookdine/internal/client/api"
	"github.com/lookdine/lookdine/internal/client/models"
)

// RemoteProvider delegates every operation to the HTTP API.
type RemoteProvider struct {
	client api.Client
}

func NewRemoteProvider(client api.Client) *RemoteProvider {
	return &RemoteProvider{client: client}
}

func (p *RemoteProvider) Signup(ctx context.Context, data models.SignupData) (*models.User, string, error) {
	return p.client.Signup(ctx, data)
}

func (p *RemoteProvider) Login(ctx context.Context, creds models.Credentials) (*models.User, string, error) {
	return p.client.Login(ctx, creds)
}

func (p *RemoteProvider) Logout(ctx context.Context) error {
	err := p.client.Logout(ctx)
	p.client.SetToken("")
	return err
}

func (p *RemoteProvider) Refresh(ctx context.Context) (string, error) {
	return p.client.Refresh(ctx)
}

func (p *RemoteProvider) Verify(ctx context.Context) error {
	return p.client.Verify(ctx)
}
