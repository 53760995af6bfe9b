// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification at login,
// and issuing bearer tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"threadboard/internal/common"
	"threadboard/internal/server/auth"
	"threadboard/internal/server/config"
	"threadboard/internal/server/models"
	"threadboard/internal/server/repositories/repomanager"
)

// UserService provides account-related operations:
// - Register: create accounts (uniqueness conflicts surface per-field)
// - Login: verify credentials and mint a bearer token
// - SetAvatarURL: update the account's avatar reference
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	tokenSecret   []byte
	tokenLifetime time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		tokenSecret:   []byte(cfg.SecretKey),
		tokenLifetime: cfg.TokenValidityDuration,
	}
}

// Register creates a new account with a one-way password digest. Username and
// email collisions are reported distinctly (common.ErrorUsernameTaken /
// common.ErrorEmailTaken).
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)

	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) || errors.Is(err, common.ErrorEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u, nil
}

// Login verifies the email/password pair and returns the account together
// with a freshly issued bearer token. Unknown email and wrong password are
// indistinguishable to the caller: both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.IssueToken(user.ID, s.tokenSecret, s.tokenLifetime)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// SetAvatarURL records a new avatar reference on the account.
func (s *UserService) SetAvatarURL(ctx context.Context, userID int64, avatarURL string) error {
	repo := s.repomanager.Users(s.db)

	if err := repo.UpdateAvatarURL(ctx, userID, avatarURL); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error updating avatar: %w", err)
	}

	return nil
}
