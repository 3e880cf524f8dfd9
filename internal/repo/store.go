package repo

import (
	"errors"
	"sync"

	dom "todo-service/internal/domain"
)

var (
	// ErrNoRows is returned when the requested todo does not exist in the user's list.
	ErrNoRows = errors.New("no rows in result set")
	// ErrUnknownUser is returned when no user is registered under the username.
	ErrUnknownUser = errors.New("unknown user")
	// ErrDuplicate is returned when a username is already registered.
	ErrDuplicate = errors.New("duplicate key")
)

// Store is the process-wide registry of users and their todo lists.
// A single lock guards the whole registry; it lives until the process exits.
type Store struct {
	mu         sync.RWMutex
	users      []*dom.User
	byUsername map[string]*dom.User
}

// NewStore returns an empty registry.
func NewStore() *Store {
	return &Store{byUsername: make(map[string]*dom.User)}
}

// lookup must be called with mu held.
func (s *Store) lookup(username string) (*dom.User, error) {
	u, ok := s.byUsername[username]
	if !ok {
		return nil, ErrUnknownUser
	}
	return u, nil
}

func indexOf(list []dom.Todo, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func copyTodos(list []dom.Todo) []dom.Todo {
	out := make([]dom.Todo, len(list))
	copy(out, list)
	return out
}

func copyUser(u *dom.User) dom.User {
	return dom.User{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Todos:    copyTodos(u.Todos),
	}
}
