package todos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/taskall-go/auth"
	"github.com/user/taskall-go/config"
)

// testAPI wires the todo handlers behind the real auth middleware, the same
// shape as the server's protected route group.
type testAPI struct {
	router  chi.Router
	authSvc *auth.Service
	store   *MemoryStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	authSvc := auth.NewService(auth.NewMemoryCredentialStore(), config.AuthConfig{
		JWTSecret:     "test-signing-key",
		TokenDuration: time.Hour,
	})
	store := NewMemoryStore()
	h := NewHandlers(NewService(store))

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(authSvc))
		r.Post("/todo", h.HandleCreate())
		r.Get("/todos", h.HandleList())
		r.Put("/todos/{id}", h.HandleUpdate())
		r.Delete("/todos/{id}", h.HandleDelete())
	})
	return &testAPI{router: r, authSvc: authSvc, store: store}
}

// signup registers a fresh user and returns a usable bearer token.
func (a *testAPI) signup(t *testing.T, email string) string {
	t.Helper()

	resp, err := a.authSvc.Signup(context.Background(), auth.SignupRequest{
		Email:           email,
		Username:        "tester",
		Password:        "Str0ngpass",
		ConfirmPassword: "Str0ngpass",
	})
	require.NoError(t, err)
	return resp.Token
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestTodoLifecycle(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "user@example.com")

	// Create
	rec := api.do(t, http.MethodPost, "/todo", token, CreateTodoRequest{
		Title: "Buy milk",
		Body:  "2% milk, 1 gal",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.False(t, created.Done)

	// List includes it
	rec = api.do(t, http.MethodGet, "/todos", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Buy milk", list[0].Title)
	assert.Equal(t, "2% milk, 1 gal", list[0].Body)

	// Mark done via its id
	rec = api.do(t, http.MethodPut, "/todos/"+created.ID.String(), token, map[string]bool{"done": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.Done)

	// Listing reflects the change
	rec = api.do(t, http.MethodGet, "/todos", token, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.True(t, list[0].Done)

	// Delete
	rec = api.do(t, http.MethodDelete, "/todos/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Todo deleted successfully")
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/todo", "", CreateTodoRequest{Title: "t", Body: "b"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, http.MethodPost, "/todo", "tampered.token.value", CreateTodoRequest{Title: "t", Body: "b"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// No resource logic ran: nothing was persisted for any owner.
	token := api.signup(t, "user@example.com")
	rec = api.do(t, http.MethodGet, "/todos", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list, "rejected requests must have no side effects")
}

func TestCrossOwnerDelete(t *testing.T) {
	api := newTestAPI(t)
	tokenA := api.signup(t, "alice@example.com")
	tokenB := api.signup(t, "bob@example.com")

	rec := api.do(t, http.MethodPost, "/todo", tokenA, CreateTodoRequest{Title: "private", Body: "alice's"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Bob cannot delete Alice's todo.
	rec = api.do(t, http.MethodDelete, "/todos/"+created.ID.String(), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Alice still sees it.
	rec = api.do(t, http.MethodGet, "/todos", tokenA, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestUpdate_UnknownID(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "user@example.com")

	rec := api.do(t, http.MethodPut, fmt.Sprintf("/todos/%s", "00000000-0000-0000-0000-000000000001"), token, map[string]bool{"done": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreate_InvalidBody(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "user@example.com")

	rec := api.do(t, http.MethodPost, "/todo", token, CreateTodoRequest{Title: "", Body: "b"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
