package users

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lookdine/lookdine/internal/common"
)

var dbSeq atomic.Int64

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:users%d?mode=memory&cache=shared", dbSeq.Add(1))
	r, err := OpenSQLite(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestCreateAndGetByEmail(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, &User{
		Name:     "Jane",
		Email:    "jane@example.com",
		PassHash: []byte("hash"),
		Phone:    "12345",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := r.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Jane", got.Name)
	require.Equal(t, []byte("hash"), got.PassHash)
	require.Equal(t, "12345", got.Phone)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, &User{Name: "A", Email: "dup@example.com", PassHash: []byte("h")})
	require.NoError(t, err)

	_, err = r.Create(ctx, &User{Name: "B", Email: "dup@example.com", PassHash: []byte("h")})
	require.ErrorIs(t, err, common.ErrEmailExists)
}

func TestGetByEmail_NotFound(t *testing.T) {
	r := setupRepo(t)

	_, err := r.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetByID(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, &User{Name: "Jane", Email: "id@example.com", PassHash: []byte("h")})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "id@example.com", got.Email)

	_, err = r.GetByID(ctx, "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}
