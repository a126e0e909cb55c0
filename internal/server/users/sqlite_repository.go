package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/lookdine/lookdine/internal/common"
	"github.com/lookdine/lookdine/internal/dbx"
	"github.com/lookdine/lookdine/internal/server/users/migrations"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the user store at dsn and applies
// embedded migrations.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Create inserts the user, generating an id when absent. The uniqueness
// check and the insert run in one transaction.
func (r *SQLiteRepository) Create(ctx context.Context, user *User) (*User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`, user.Email).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error performing sql request: %w", err)
		}
		if exists {
			return common.ErrEmailExists
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (id, name, email, pass_hash, phone, address)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			user.ID, user.Name, user.Email, user.PassHash, user.Phone, user.Address)
		if err != nil {
			return fmt.Errorf("error performing sql request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, name, email, pass_hash, phone, address, created_at FROM users
	          WHERE email = ?`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PassHash, &user.Phone, &user.Address, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT id, name, email, pass_hash, phone, address, created_at FROM users
	          WHERE id = ?`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PassHash, &user.Phone, &user.Address, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
