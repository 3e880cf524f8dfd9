package service

import (
	"context"
	"errors"
	"strings"

	dom "todo-service/internal/domain"
	"todo-service/internal/repo"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UserService handles registration and identity resolution.
type UserService struct {
	repo repo.UserRepo
	log  logrus.FieldLogger
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo, log logrus.FieldLogger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Register creates a user with an empty todo list.
func (s *UserService) Register(ctx context.Context, name, username string) (dom.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(username) == "" {
		return dom.User{}, ErrInvalidPayload
	}
	u, err := s.repo.Create(ctx, dom.User{
		ID:       uuid.NewString(),
		Name:     name,
		Username: username,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return dom.User{}, ErrUsernameTaken
		}
		return dom.User{}, err
	}
	s.log.WithFields(logrus.Fields{"username": u.Username, "user_id": u.ID}).Info("user registered")
	return u, nil
}

// Resolve maps the identity credential to a registered user.
func (s *UserService) Resolve(ctx context.Context, username string) (dom.User, error) {
	if username == "" {
		return dom.User{}, ErrInvalidCredential
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrUnknownUser) {
			return dom.User{}, ErrInvalidCredential
		}
		return dom.User{}, err
	}
	return u, nil
}
