// Package auth implements registration, login and token lifecycle for the
// API. Passwords are stored as bcrypt hashes; access tokens are HS256 JWTs.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lookdine/lookdine/internal/common"
	"github.com/lookdine/lookdine/internal/server/lib/jwt"
	"github.com/lookdine/lookdine/internal/server/lib/logger/sl"
	"github.com/lookdine/lookdine/internal/server/users"
)

type Auth struct {
	log      *slog.Logger
	users    users.Repository
	secret   []byte
	tokenTTL time.Duration
}

func New(log *slog.Logger, repo users.Repository, secret []byte, tokenTTL time.Duration) *Auth {
	return &Auth{
		log:      log,
		users:    repo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates a new account and returns it with a fresh token.
// A taken email yields common.ErrEmailExists.
func (a *Auth) Register(ctx context.Context, name, email, password, phone, address string) (*users.User, string, error) {
	const op = "Auth.Register"

	log := a.log.With(slog.String("op", op))

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	user, err := a.users.Create(ctx, &users.User{
		Name:     name,
		Email:    email,
		PassHash: passHash,
		Phone:    phone,
		Address:  address,
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			log.Warn("email already registered")
			return nil, "", fmt.Errorf("%s: %w", op, common.ErrEmailExists)
		}
		log.Error("failed to save user", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := jwt.NewToken(user, a.secret, a.tokenTTL)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered")
	return user, token, nil
}

// Login checks the credentials and returns the account with a fresh token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, email, password string) (*users.User, string, error) {
	const op = "Auth.Login"

	log := a.log.With(slog.String("op", op))

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			log.Warn("user not found")
			return nil, "", fmt.Errorf("%s: %w", op, common.ErrInvalidCredentials)
		}
		log.Error("failed to get user", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PassHash, []byte(password)); err != nil {
		log.Info("invalid credentials")
		return nil, "", fmt.Errorf("%s: %w", op, common.ErrInvalidCredentials)
	}

	token, err := jwt.NewToken(user, a.secret, a.tokenTTL)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in")
	return user, token, nil
}

// Refresh issues a new token for an already authenticated user.
func (a *Auth) Refresh(ctx context.Context, userID string) (string, error) {
	const op = "Auth.Refresh"

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", op, common.ErrInvalidToken)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := jwt.NewToken(user, a.secret, a.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

// Verify resolves a user id (as placed in the context by the auth
// middleware) back to the account it belongs to.
func (a *Auth) Verify(ctx context.Context, userID string) (*users.User, error) {
	const op = "Auth.Verify"

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, common.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
