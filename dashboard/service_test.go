package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/taskall-go/books"
	"github.com/user/taskall-go/todos"
)

func newTestServices() (*Service, *todos.Service, *books.Service) {
	todoSvc := todos.NewService(todos.NewMemoryStore())
	bookSvc := books.NewService(books.NewMemoryStore())
	return NewService(todoSvc, bookSvc), todoSvc, bookSvc
}

func boolPtr(b bool) *bool { return &b }

func TestGetSummary_Empty(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestServices()
	summary, err := svc.GetSummary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Empty(t, summary.Todos)
	assert.Empty(t, summary.Books)
	assert.Equal(t, Stats{}, summary.Stats)
}

func TestGetSummary_Stats(t *testing.T) {
	t.Parallel()

	svc, todoSvc, bookSvc := newTestServices()
	ctx := context.Background()
	owner := uuid.New()

	var created []*todos.Todo
	for _, title := range []string{"one", "two", "three"} {
		td, err := todoSvc.Create(ctx, owner, todos.CreateTodoRequest{Title: title, Body: "body"})
		require.NoError(t, err)
		created = append(created, td)
	}
	_, err := todoSvc.Update(ctx, owner, created[0].ID.String(), todos.UpdateTodoRequest{Done: boolPtr(true)})
	require.NoError(t, err)

	for _, name := range []string{"book a", "book b"} {
		_, err := bookSvc.Create(ctx, owner, books.CreateBookRequest{BookName: name, Description: "d", Rating: 3})
		require.NoError(t, err)
	}

	summary, err := svc.GetSummary(ctx, owner)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Stats.TotalTodos)
	assert.Equal(t, 1, summary.Stats.CompletedTodos)
	assert.Equal(t, 2, summary.Stats.RemainingTodos)
	assert.Equal(t, 2, summary.Stats.TotalBooks)

	// Invariants that must hold for any data set.
	assert.Equal(t, summary.Stats.TotalTodos, summary.Stats.CompletedTodos+summary.Stats.RemainingTodos)
	assert.Equal(t, summary.Stats.TotalBooks, len(summary.Books))
	assert.Equal(t, summary.Stats.TotalTodos, len(summary.Todos))
}

func TestGetSummary_CompletedIncrementsAfterDone(t *testing.T) {
	t.Parallel()

	svc, todoSvc, _ := newTestServices()
	ctx := context.Background()
	owner := uuid.New()

	td, err := todoSvc.Create(ctx, owner, todos.CreateTodoRequest{Title: "Buy milk", Body: "2% milk, 1 gal"})
	require.NoError(t, err)

	before, err := svc.GetSummary(ctx, owner)
	require.NoError(t, err)

	_, err = todoSvc.Update(ctx, owner, td.ID.String(), todos.UpdateTodoRequest{Done: boolPtr(true)})
	require.NoError(t, err)

	after, err := svc.GetSummary(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, before.Stats.CompletedTodos+1, after.Stats.CompletedTodos)
	assert.Equal(t, before.Stats.TotalTodos, after.Stats.TotalTodos)
}

func TestGetSummary_OwnerScoped(t *testing.T) {
	t.Parallel()

	svc, todoSvc, bookSvc := newTestServices()
	ctx := context.Background()
	ownerA := uuid.New()
	ownerB := uuid.New()

	_, err := todoSvc.Create(ctx, ownerA, todos.CreateTodoRequest{Title: "a's todo", Body: "b"})
	require.NoError(t, err)
	_, err = bookSvc.Create(ctx, ownerB, books.CreateBookRequest{BookName: "b's book", Description: "d", Rating: 5})
	require.NoError(t, err)

	summaryA, err := svc.GetSummary(ctx, ownerA)
	require.NoError(t, err)
	assert.Equal(t, 1, summaryA.Stats.TotalTodos)
	assert.Equal(t, 0, summaryA.Stats.TotalBooks)

	summaryB, err := svc.GetSummary(ctx, ownerB)
	require.NoError(t, err)
	assert.Equal(t, 0, summaryB.Stats.TotalTodos)
	assert.Equal(t, 1, summaryB.Stats.TotalBooks)
}
