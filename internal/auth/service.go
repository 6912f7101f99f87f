// Package auth implements registration and credential verification
// for the portal: bcrypt-hashed passwords, duplicate-username
// detection, and a fixed pause on every failed login.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/nestimate/nestimate/internal/models"
	"github.com/nestimate/nestimate/internal/repo"
	"github.com/nestimate/nestimate/internal/shared"
)

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 8

// uniqueViolation is the postgres error code for a violated unique constraint.
const uniqueViolation = "23505"

type Service struct {
	Users *repo.UserRepo

	// FailDelay is the fixed pause applied before answering any failed
	// login. Probing absent usernames costs the same as guessing wrong
	// passwords.
	FailDelay time.Duration
}

func NewService(users *repo.UserRepo, failDelay time.Duration) *Service {
	return &Service{Users: users, FailDelay: failDelay}
}

// Register validates the credentials and stores a new user with a
// bcrypt password hash. Validation failures return before any store
// access.
func (s *Service) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, shared.ErrEmptyCredentials
	}
	if len(password) < MinPasswordLen {
		return nil, shared.ErrPasswordTooShort
	}

	if _, err := s.Users.GetByUsername(ctx, username); err == nil {
		return nil, shared.ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.Users.Create(ctx, username, string(hash))
	if err != nil {
		// Insert race: the username was claimed between the check and the insert.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, shared.ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns the matching user.
// Both failure paths (unknown username, wrong password) answer with
// ErrInvalidCredentials after the fixed delay.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.fail()
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, s.fail()
	}

	return user, nil
}

func (s *Service) fail() error {
	time.Sleep(s.FailDelay)
	return shared.ErrInvalidCredentials
}
