package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/makemate/agency-backend/internal/domain/entity"
	repo "github.com/makemate/agency-backend/internal/domain/repository"
	"github.com/makemate/agency-backend/pkg/helpers"
)

var ErrInvalidUser = errors.New("username and password are required")

type UserService struct {
	Repo   repo.UserRepository
	Logger logrus.FieldLogger
}

func NewUserService(repo repo.UserRepository, logger logrus.FieldLogger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

// Create stores a new user with a bcrypt hash of password.
func (s *UserService) Create(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidUser
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.Repo.Create(entity.User{Username: username, Password: hash})
	if err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}
	return u, nil
}

// EnsureUser creates the user unless the username is already taken.
// created reports whether a new record was stored.
func (s *UserService) EnsureUser(ctx context.Context, username, password string) (*entity.User, bool, error) {
	if u, err := s.Repo.GetByUsername(username); err == nil {
		return u, false, nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, false, err
	}
	u, err := s.Create(ctx, username, password)
	if err != nil {
		return nil, false, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("seed user created")
	return u, true, nil
}

func (s *UserService) Get(id int64) (*entity.User, error) {
	return s.Repo.GetByID(id)
}
