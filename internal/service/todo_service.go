package service

import (
	"context"
	"errors"
	"strings"
	"time"

	dom "todo-service/internal/domain"
	"todo-service/internal/repo"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

type TodoService struct {
	repo  repo.TodoRepo
	clock clockwork.Clock
	log   logrus.FieldLogger
}

// NewTodoService creates a TodoService. If clock is nil, the wall clock is used.
func NewTodoService(r repo.TodoRepo, clock clockwork.Clock, log logrus.FieldLogger) *TodoService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TodoService{repo: r, clock: clock, log: log}
}

func (s *TodoService) List(ctx context.Context, username string) ([]dom.Todo, error) {
	list, err := s.repo.List(ctx, username)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return list, nil
}

func (s *TodoService) Create(ctx context.Context, username, title string, deadline time.Time) (dom.Todo, error) {
	if err := validateTodo(title, deadline); err != nil {
		return dom.Todo{}, err
	}
	t, err := s.repo.Append(ctx, username, dom.Todo{
		ID:        uuid.NewString(),
		Title:     title,
		Done:      false,
		Deadline:  deadline,
		CreatedAt: s.clock.Now().UTC(),
	})
	if err != nil {
		return dom.Todo{}, mapRepoErr(err)
	}
	s.log.WithFields(logrus.Fields{"username": username, "todo_id": t.ID}).Debug("todo created")
	return t, nil
}

func (s *TodoService) Update(ctx context.Context, username, id, title string, deadline time.Time) (dom.Todo, error) {
	if err := validateTodo(title, deadline); err != nil {
		return dom.Todo{}, err
	}
	t, err := s.repo.Replace(ctx, username, id, title, deadline)
	if err != nil {
		return dom.Todo{}, mapRepoErr(err)
	}
	s.log.WithFields(logrus.Fields{"username": username, "todo_id": id}).Debug("todo updated")
	return t, nil
}

func (s *TodoService) Complete(ctx context.Context, username, id string) (dom.Todo, error) {
	t, err := s.repo.MarkDone(ctx, username, id)
	if err != nil {
		return dom.Todo{}, mapRepoErr(err)
	}
	s.log.WithFields(logrus.Fields{"username": username, "todo_id": id}).Debug("todo completed")
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, username, id string) error {
	if err := s.repo.Delete(ctx, username, id); err != nil {
		return mapRepoErr(err)
	}
	s.log.WithFields(logrus.Fields{"username": username, "todo_id": id}).Debug("todo deleted")
	return nil
}

func validateTodo(title string, deadline time.Time) error {
	if strings.TrimSpace(title) == "" || deadline.IsZero() {
		return ErrInvalidTodo
	}
	return nil
}

func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrUnknownUser):
		return ErrInvalidCredential
	case errors.Is(err, repo.ErrNoRows):
		return ErrNotFound
	}
	return err
}
