package repo

import (
	"context"
	"time"

	dom "todo-service/internal/domain"
)

type TodoRepo interface {
	List(ctx context.Context, username string) ([]dom.Todo, error)
	Append(ctx context.Context, username string, t dom.Todo) (dom.Todo, error)
	Replace(ctx context.Context, username, id, title string, deadline time.Time) (dom.Todo, error)
	MarkDone(ctx context.Context, username, id string) (dom.Todo, error)
	Delete(ctx context.Context, username, id string) error
}

// MemTodoRepo keeps each user's todos as an ordered slice inside the Store.
type MemTodoRepo struct {
	store *Store
}

func NewMemTodoRepo(store *Store) *MemTodoRepo {
	return &MemTodoRepo{store: store}
}

func (r *MemTodoRepo) List(ctx context.Context, username string) ([]dom.Todo, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	u, err := r.store.lookup(username)
	if err != nil {
		return nil, err
	}
	return copyTodos(u.Todos), nil
}

func (r *MemTodoRepo) Append(ctx context.Context, username string, t dom.Todo) (dom.Todo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, err := r.store.lookup(username)
	if err != nil {
		return dom.Todo{}, err
	}
	u.Todos = append(u.Todos, t)
	return t, nil
}

// Replace swaps title and deadline at the todo's current position.
func (r *MemTodoRepo) Replace(ctx context.Context, username, id, title string, deadline time.Time) (dom.Todo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, err := r.store.lookup(username)
	if err != nil {
		return dom.Todo{}, err
	}
	i := indexOf(u.Todos, id)
	if i < 0 {
		return dom.Todo{}, ErrNoRows
	}
	u.Todos[i].Title = title
	u.Todos[i].Deadline = deadline
	return u.Todos[i], nil
}

func (r *MemTodoRepo) MarkDone(ctx context.Context, username, id string) (dom.Todo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, err := r.store.lookup(username)
	if err != nil {
		return dom.Todo{}, err
	}
	i := indexOf(u.Todos, id)
	if i < 0 {
		return dom.Todo{}, ErrNoRows
	}
	u.Todos[i].Done = true
	return u.Todos[i], nil
}

func (r *MemTodoRepo) Delete(ctx context.Context, username, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, err := r.store.lookup(username)
	if err != nil {
		return err
	}
	i := indexOf(u.Todos, id)
	if i < 0 {
		return ErrNoRows
	}
	u.Todos = append(u.Todos[:i], u.Todos[i+1:]...)
	return nil
}
