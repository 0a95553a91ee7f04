package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jparkin/catalog-api/internal/api"
	"github.com/jparkin/catalog-api/internal/domain"
	"github.com/jparkin/catalog-api/internal/mocks"
	"github.com/jparkin/catalog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUserRouter wires a UserHandler onto a chi router the way the server
// does, so path parameters resolve in tests.
func newUserRouter(userStore *mocks.MockUserStore, itemStore *mocks.MockItemStore) http.Handler {
	handler := api.NewUserHandler(userStore, itemStore, nil)

	r := chi.NewRouter()
	r.Post("/users/", handler.CreateUser)
	r.Get("/users/", handler.ListUsers)
	r.Get("/users/{user_id}", handler.GetUser)
	return r
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	t.Run("fresh email succeeds with generated id and active flag", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router := newUserRouter(userStore, mocks.NewMockItemStore())

		w := postJSON(t, router, "/users/", `{"email":"new@example.com","password":"secret"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "new@example.com", resp.Email)
		assert.True(t, resp.IsActive)
		assert.NotNil(t, resp.Items)
		assert.Empty(t, resp.Items)

		// The stored password is the submitted one, verbatim.
		assert.Equal(t, "secret", userStore.Users[1].HashedPassword)
		// And it never appears in the response body.
		assert.NotContains(t, w.Body.String(), "secret")
	})

	t.Run("duplicate email fails without a second insert", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		existing, err := domain.NewUser("taken@example.com", "pw")
		require.NoError(t, err)
		require.NoError(t, userStore.Create(context.Background(), existing))
		createCallsBefore := userStore.CreateCalls

		router := newUserRouter(userStore, mocks.NewMockItemStore())

		w := postJSON(t, router, "/users/", `{"email":"taken@example.com","password":"other"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email already registered")
		assert.Equal(t, createCallsBefore, userStore.CreateCalls,
			"the pre-check must reject before an insert is attempted")
		assert.Len(t, userStore.Users, 1)
	})

	t.Run("insert race on email still yields the conflict error", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			return nil, store.ErrUserNotFound
		}
		userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
			return store.ErrEmailExists
		}

		router := newUserRouter(userStore, mocks.NewMockItemStore())

		w := postJSON(t, router, "/users/", `{"email":"raced@example.com","password":"pw"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email already registered")
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(mocks.NewMockUserStore(), mocks.NewMockItemStore())

		w := postJSON(t, router, "/users/", `{"email": `)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request format")
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			body string
		}{
			{"missing_password", `{"email":"a@example.com"}`},
			{"missing_email", `{"password":"pw"}`},
			{"malformed_email", `{"email":"not-an-email","password":"pw"}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				router := newUserRouter(mocks.NewMockUserStore(), mocks.NewMockItemStore())
				w := postJSON(t, router, "/users/", tt.body)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), "Validation error")
			})
		}
	})

	t.Run("store failure surfaces as a generic server error", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			return nil, store.ErrUserNotFound
		}
		userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
			return assert.AnError
		}

		router := newUserRouter(userStore, mocks.NewMockItemStore())

		w := postJSON(t, router, "/users/", `{"email":"a@example.com","password":"pw"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	t.Run("round trip preserves email and active flag", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		itemStore := mocks.NewMockItemStore()
		router := newUserRouter(userStore, itemStore)

		created := postJSON(t, router, "/users/", `{"email":"rt@example.com","password":"pw"}`)
		require.Equal(t, http.StatusOK, created.Code)

		var createdResp api.UserResponse
		require.NoError(t, json.Unmarshal(created.Body.Bytes(), &createdResp))

		fetched := getPath(t, router, "/users/1")
		require.Equal(t, http.StatusOK, fetched.Code)

		var fetchedResp api.UserResponse
		require.NoError(t, json.Unmarshal(fetched.Body.Bytes(), &fetchedResp))
		assert.Equal(t, createdResp.Email, fetchedResp.Email)
		assert.Equal(t, createdResp.IsActive, fetchedResp.IsActive)
		assert.Equal(t, createdResp.ID, fetchedResp.ID)
	})

	t.Run("includes owned items", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("owner@example.com", "pw")
		require.NoError(t, err)
		require.NoError(t, userStore.Create(context.Background(), user))

		itemStore := mocks.NewMockItemStore()
		item, err := domain.NewItem("Widget", nil, user.ID)
		require.NoError(t, err)
		require.NoError(t, itemStore.Create(context.Background(), item))

		router := newUserRouter(userStore, itemStore)

		w := getPath(t, router, "/users/1")
		require.Equal(t, http.StatusOK, w.Code)

		var resp api.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Widget", resp.Items[0].Title)
		assert.Equal(t, user.ID, resp.Items[0].OwnerID)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(mocks.NewMockUserStore(), mocks.NewMockItemStore())

		w := getPath(t, router, "/users/99")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})

	t.Run("non-integer id is a client error", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(mocks.NewMockUserStore(), mocks.NewMockItemStore())

		w := getPath(t, router, "/users/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	seedUsers := func(t *testing.T, userStore *mocks.MockUserStore, n int) {
		t.Helper()
		for i := 0; i < n; i++ {
			user, err := domain.NewUser(string(rune('a'+i))+"@example.com", "pw")
			require.NoError(t, err)
			require.NoError(t, userStore.Create(context.Background(), user))
		}
	}

	t.Run("returns users with batched items", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		seedUsers(t, userStore, 2)

		itemStore := mocks.NewMockItemStore()
		item, err := domain.NewItem("Widget", nil, 2)
		require.NoError(t, err)
		require.NoError(t, itemStore.Create(context.Background(), item))

		router := newUserRouter(userStore, itemStore)

		w := getPath(t, router, "/users/")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []api.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Empty(t, resp[0].Items)
		require.Len(t, resp[1].Items, 1)
		assert.Equal(t, "Widget", resp[1].Items[0].Title)
	})

	t.Run("skip and limit bound the page", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		seedUsers(t, userStore, 5)

		router := newUserRouter(userStore, mocks.NewMockItemStore())

		w := getPath(t, router, "/users/?skip=1&limit=2")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []api.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		// The first user in storage order is skipped.
		assert.Equal(t, int64(2), resp[0].ID)
		assert.Equal(t, int64(3), resp[1].ID)
	})

	t.Run("explicit zero limit returns an empty page", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		seedUsers(t, userStore, 3)

		router := newUserRouter(userStore, mocks.NewMockItemStore())

		w := getPath(t, router, "/users/?limit=0")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("non-integer pagination is a client error", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(mocks.NewMockUserStore(), mocks.NewMockItemStore())

		w := getPath(t, router, "/users/?skip=many")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty store lists as empty array", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(mocks.NewMockUserStore(), mocks.NewMockItemStore())

		w := getPath(t, router, "/users/")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
