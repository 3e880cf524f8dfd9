package service

import (
	"context"
	"io"
	"testing"
	"time"

	"todo-service/internal/repo"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	start    = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	deadline = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	users *UserService
	todos *TodoService
	clock *clockwork.FakeClock
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := repo.NewStore()
	clock := clockwork.NewFakeClockAt(start)
	f := fixture{
		users: NewUserService(repo.NewMemUserRepo(store), log),
		todos: NewTodoService(repo.NewMemTodoRepo(store), clock, log),
		clock: clock,
	}
	_, err := f.users.Register(context.Background(), "Alice", "alice")
	require.NoError(t, err)
	return f
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	u, err := f.users.Register(ctx, "Bob", "bob")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Bob", u.Name)
	assert.Equal(t, "bob", u.Username)
	assert.Empty(t, u.Todos)

	_, err = f.users.Register(ctx, "Bobby", "bob")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	got, err := f.users.Resolve(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Bob", got.Name)
}

func TestRegisterRequiresFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, in := range [][2]string{{"", "carol"}, {"Carol", ""}, {"  ", "carol"}, {"", ""}} {
		_, err := f.users.Register(ctx, in[0], in[1])
		assert.ErrorIs(t, err, ErrInvalidPayload, "%q", in)
	}
	_, err := f.users.Resolve(ctx, "carol")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.users.Resolve(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidCredential)
	_, err = f.users.Resolve(ctx, "ALICE")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestListFreshAccountIsEmpty(t *testing.T) {
	f := newFixture(t)

	list, err := f.todos.List(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.todos.Create(ctx, "alice", "First", deadline)
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	todo, err := f.todos.Create(ctx, "alice", "Buy milk", deadline)
	require.NoError(t, err)

	assert.NotEmpty(t, todo.ID)
	assert.NotEqual(t, first.ID, todo.ID)
	assert.False(t, todo.Done)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, deadline, todo.Deadline)
	assert.Equal(t, start.Add(time.Minute), todo.CreatedAt)
	assert.False(t, todo.CreatedAt.After(f.clock.Now()))

	list, err := f.todos.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, todo, list[len(list)-1])
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.todos.Create(ctx, "alice", "", deadline)
	assert.ErrorIs(t, err, ErrInvalidTodo)
	_, err = f.todos.Create(ctx, "alice", "Task", time.Time{})
	assert.ErrorIs(t, err, ErrInvalidTodo)
	_, err = f.todos.Create(ctx, "nobody", "Task", deadline)
	assert.ErrorIs(t, err, ErrInvalidCredential)

	list, err := f.todos.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdatePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a, err := f.todos.Create(ctx, "alice", "A", deadline)
	require.NoError(t, err)
	b, err := f.todos.Create(ctx, "alice", "B", deadline)
	require.NoError(t, err)
	_, err = f.todos.Complete(ctx, "alice", a.ID)
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	newDeadline := deadline.AddDate(1, 0, 0)
	updated, err := f.todos.Update(ctx, "alice", a.ID, "A2", newDeadline)
	require.NoError(t, err)

	assert.Equal(t, a.ID, updated.ID)
	assert.True(t, updated.Done)
	assert.Equal(t, a.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "A2", updated.Title)
	assert.Equal(t, newDeadline, updated.Deadline)

	list, err := f.todos.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, updated, list[0])
	assert.Equal(t, b, list[1])
}

func TestUpdateRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a, err := f.todos.Create(ctx, "alice", "A", deadline)
	require.NoError(t, err)

	_, err = f.todos.Update(ctx, "alice", a.ID, "", deadline)
	assert.ErrorIs(t, err, ErrInvalidTodo)
	_, err = f.todos.Update(ctx, "alice", a.ID, "A2", time.Time{})
	assert.ErrorIs(t, err, ErrInvalidTodo)
	_, err = f.todos.Update(ctx, "alice", "missing", "A2", deadline)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := f.todos.List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, a, list[0])
}

func TestCompleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a, err := f.todos.Create(ctx, "alice", "A", deadline)
	require.NoError(t, err)

	once, err := f.todos.Complete(ctx, "alice", a.ID)
	require.NoError(t, err)
	twice, err := f.todos.Complete(ctx, "alice", a.ID)
	require.NoError(t, err)

	assert.True(t, once.Done)
	assert.Equal(t, once, twice)
	assert.Equal(t, a.ID, twice.ID)

	list, err := f.todos.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.todos.Complete(ctx, "alice", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var created []string
	for _, title := range []string{"A", "B", "C"} {
		todo, err := f.todos.Create(ctx, "alice", title, deadline)
		require.NoError(t, err)
		created = append(created, todo.ID)
	}

	require.NoError(t, f.todos.Delete(ctx, "alice", created[1]))
	list, err := f.todos.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, created[0], list[0].ID)
	assert.Equal(t, created[2], list[1].ID)

	assert.ErrorIs(t, f.todos.Delete(ctx, "alice", created[1]), ErrNotFound)
	list, err = f.todos.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestTodosAreScopedToOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.users.Register(ctx, "Bob", "bob")
	require.NoError(t, err)

	a, err := f.todos.Create(ctx, "alice", "A", deadline)
	require.NoError(t, err)

	_, err = f.todos.Complete(ctx, "bob", a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.todos.Delete(ctx, "bob", a.ID), ErrNotFound)

	list, err := f.todos.List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, a, list[0])
}
