package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lookdine/lookdine/internal/client/models"
	"github.com/lookdine/lookdine/internal/client/store"
	"github.com/lookdine/lookdine/internal/common"
)

// mockTokenPrefix marks tokens synthesized by the local provider.
const mockTokenPrefix = "mock-jwt-token-"

// demoAccounts are the hardcoded credentials that always work offline.
var demoAccounts = []models.RegistryEntry{
	{ID: "1", Email: "user@example.com", Password: "password", Name: "John Doe"},
	{ID: "2", Email: "demo@lookdine.app", Password: "demo123", Name: "Demo User"},
}

// LocalProvider is the mock authentication backend consulted when the real
// endpoint is unreachable. Signed-up users are appended to a registry
// persisted under the registered_users key; login also accepts the demo
// accounts.
type LocalProvider struct {
	store store.Store
}

func NewLocalProvider(st store.Store) *LocalProvider {
	return &LocalProvider{store: st}
}

// loadRegistry reads the registered-user registry. An absent or unparseable
// value yields an empty registry; corruption additionally clears the key.
func (p *LocalProvider) loadRegistry(ctx context.Context) ([]models.RegistryEntry, error) {
	raw, err := p.store.Get(ctx, store.KeyRegistry)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var registry []models.RegistryEntry
	if err := json.Unmarshal(raw, &registry); err != nil {
		_ = p.store.Delete(ctx, store.KeyRegistry)
		return nil, nil
	}
	return registry, nil
}

func (p *LocalProvider) saveRegistry(ctx context.Context, registry []models.RegistryEntry) error {
	raw, err := json.Marshal(registry)
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}
	return p.store.Set(ctx, store.KeyRegistry, raw)
}

func mockToken() string {
	suffix, err := common.MakeRandHexString(16)
	if err != nil {
		suffix = uuid.NewString()
	}
	return mockTokenPrefix + suffix
}

func (p *LocalProvider) Signup(ctx context.Context, data models.SignupData) (*models.User, string, error) {
	if data.Name == "" {
		return nil, "", fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if data.Email == "" {
		return nil, "", fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if data.Password == "" {
		return nil, "", fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	registry, err := p.loadRegistry(ctx)
	if err != nil {
		return nil, "", err
	}
	for _, entry := range registry {
		if entry.Email == data.Email {
			return nil, "", common.ErrEmailExists
		}
	}

	entry := models.RegistryEntry{
		ID:       uuid.NewString(),
		Email:    data.Email,
		Password: data.Password,
		Name:     data.Name,
	}
	if err := p.saveRegistry(ctx, append(registry, entry)); err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:      entry.ID,
		Name:    entry.Name,
		Email:   entry.Email,
		Phone:   data.Phone,
		Address: data.Address,
	}
	return user, mockToken(), nil
}

// Login checks the persisted registry first, then the demo accounts; the
// first email+password match wins.
func (p *LocalProvider) Login(ctx context.Context, creds models.Credentials) (*models.User, string, error) {
	registry, err := p.loadRegistry(ctx)
	if err != nil {
		return nil, "", err
	}

	for _, entry := range append(registry, demoAccounts...) {
		if entry.Email == creds.Email && entry.Password == creds.Password {
			user := &models.User{ID: entry.ID, Name: entry.Name, Email: entry.Email}
			return user, mockToken(), nil
		}
	}

	return nil, "", common.ErrInvalidCredentials
}

func (p *LocalProvider) Logout(ctx context.Context) error {
	return nil
}

func (p *LocalProvider) Refresh(ctx context.Context) (string, error) {
	return mockToken(), nil
}

// Verify trusts any stored token: with the real backend unreachable there is
// nothing to check it against.
func (p *LocalProvider) Verify(ctx context.Context) error {
	token, err := p.store.Get(ctx, store.KeyToken)
	if err != nil {
		return err
	}
	if len(token) == 0 {
		return common.ErrInvalidToken
	}
	return nil
}
