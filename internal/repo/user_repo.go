package repo

import (
	"context"

	dom "todo-service/internal/domain"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	Create(ctx context.Context, u dom.User) (dom.User, error)
	Count(ctx context.Context) (int, error)
}

// MemUserRepo implements UserRepo on top of the in-memory Store.
type MemUserRepo struct {
	store *Store
}

// NewMemUserRepo returns a new MemUserRepo.
func NewMemUserRepo(store *Store) *MemUserRepo {
	return &MemUserRepo{store: store}
}

// GetByUsername returns the user by exact username.
func (r *MemUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	u, err := r.store.lookup(username)
	if err != nil {
		return dom.User{}, err
	}
	return copyUser(u), nil
}

// Create appends a new user to the registry and returns it.
func (r *MemUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.byUsername[u.Username]; exists {
		return dom.User{}, ErrDuplicate
	}
	stored := &dom.User{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Todos:    []dom.Todo{},
	}
	r.store.users = append(r.store.users, stored)
	r.store.byUsername[stored.Username] = stored
	return copyUser(stored), nil
}

// Count returns the number of registered users.
func (r *MemUserRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.users), nil
}
