package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lookdine/lookdine/internal/common"
	"github.com/lookdine/lookdine/internal/server/lib/jwt"
	"github.com/lookdine/lookdine/internal/server/users"
)

type fakeRepo struct {
	byEmail map[string]*users.User
	byID    map[string]*users.User
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]*users.User{}, byID: map[string]*users.User{}}
}

func (r *fakeRepo) Create(_ context.Context, user *users.User) (*users.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrEmailExists
	}
	r.nextID++
	user.ID = string(rune('a' + r.nextID))
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return user, nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*users.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

var testSecret = []byte("test-secret")

func newAuth(repo users.Repository) *Auth {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, repo, testSecret, time.Minute)
}

func TestRegister(t *testing.T) {
	a := newAuth(newFakeRepo())
	ctx := context.Background()

	user, token, err := a.Register(ctx, "Jane", "jane@example.com", "secret1", "123", "Main St")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PassHash, []byte("secret1")))

	claims, err := jwt.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	a := newAuth(newFakeRepo())
	ctx := context.Background()

	_, _, err := a.Register(ctx, "Jane", "jane@example.com", "secret1", "", "")
	require.NoError(t, err)

	_, _, err = a.Register(ctx, "Janet", "jane@example.com", "secret2", "", "")
	assert.ErrorIs(t, err, common.ErrEmailExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeRepo()
	a := newAuth(repo)
	ctx := context.Background()

	_, _, err := a.Register(ctx, "Jane", "jane@example.com", "secret1", "", "")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		user, token, err := a.Login(ctx, "jane@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "Jane", user.Name)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := a.Login(ctx, "jane@example.com", "nope")
		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := a.Login(ctx, "nobody@example.com", "secret1")
		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	})
}

func TestRefreshAndVerify(t *testing.T) {
	a := newAuth(newFakeRepo())
	ctx := context.Background()

	user, _, err := a.Register(ctx, "Jane", "jane@example.com", "secret1", "", "")
	require.NoError(t, err)

	token, err := a.Refresh(ctx, user.ID)
	require.NoError(t, err)
	claims, err := jwt.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	got, err := a.Verify(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.Email)

	_, err = a.Verify(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	_, err = a.Refresh(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
