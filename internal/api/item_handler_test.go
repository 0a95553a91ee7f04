package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jparkin/catalog-api/internal/api"
	"github.com/jparkin/catalog-api/internal/domain"
	"github.com/jparkin/catalog-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemRouter(itemStore *mocks.MockItemStore) http.Handler {
	handler := api.NewItemHandler(itemStore, nil)

	r := chi.NewRouter()
	r.Post("/users/{user_id}/items/", handler.CreateItemForUser)
	r.Get("/items/", handler.ListItems)
	return r
}

func TestCreateItemForUser(t *testing.T) {
	t.Parallel()

	t.Run("creates item with generated id and owner", func(t *testing.T) {
		t.Parallel()

		itemStore := mocks.NewMockItemStore()
		itemStore.KnownOwners[4] = true
		router := newItemRouter(itemStore)

		w := postJSON(t, router, "/users/4/items/",
			`{"title":"Widget","description":"a widget"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Widget", resp.Title)
		require.NotNil(t, resp.Description)
		assert.Equal(t, "a widget", *resp.Description)
		assert.Equal(t, int64(4), resp.OwnerID)
	})

	t.Run("description may be omitted", func(t *testing.T) {
		t.Parallel()

		itemStore := mocks.NewMockItemStore()
		itemStore.KnownOwners[4] = true
		router := newItemRouter(itemStore)

		w := postJSON(t, router, "/users/4/items/", `{"title":"Widget"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Nil(t, resp.Description)
	})

	t.Run("nonexistent owner is reported as not found", func(t *testing.T) {
		t.Parallel()

		itemStore := mocks.NewMockItemStore()
		itemStore.KnownOwners[1] = true
		router := newItemRouter(itemStore)

		w := postJSON(t, router, "/users/999/items/", `{"title":"Widget"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
		assert.Empty(t, itemStore.Items)
	})

	t.Run("missing title fails validation", func(t *testing.T) {
		t.Parallel()

		router := newItemRouter(mocks.NewMockItemStore())

		w := postJSON(t, router, "/users/1/items/", `{"description":"no title"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Validation error")
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		t.Parallel()

		router := newItemRouter(mocks.NewMockItemStore())

		w := postJSON(t, router, "/users/1/items/", `{"title"`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request format")
	})

	t.Run("non-integer owner id is a client error", func(t *testing.T) {
		t.Parallel()

		router := newItemRouter(mocks.NewMockItemStore())

		w := postJSON(t, router, "/users/abc/items/", `{"title":"Widget"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListItems(t *testing.T) {
	t.Parallel()

	seedItems := func(t *testing.T, itemStore *mocks.MockItemStore, ownerID int64, titles ...string) {
		t.Helper()
		itemStore.KnownOwners[ownerID] = true
		for _, title := range titles {
			item, err := domain.NewItem(title, nil, ownerID)
			require.NoError(t, err)
			require.NoError(t, itemStore.Create(context.Background(), item))
		}
	}

	t.Run("created item appears with its owner id", func(t *testing.T) {
		t.Parallel()

		itemStore := mocks.NewMockItemStore()
		seedItems(t, itemStore, 7, "Widget")
		router := newItemRouter(itemStore)

		w := getPath(t, router, "/items/")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []api.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "Widget", resp[0].Title)
		assert.Equal(t, int64(7), resp[0].OwnerID)
	})

	t.Run("skip and limit bound the page", func(t *testing.T) {
		t.Parallel()

		itemStore := mocks.NewMockItemStore()
		seedItems(t, itemStore, 1, "A", "B", "C", "D")
		router := newItemRouter(itemStore)

		w := getPath(t, router, "/items/?skip=2&limit=1")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []api.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "C", resp[0].Title)
	})

	t.Run("explicit zero limit returns an empty page", func(t *testing.T) {
		t.Parallel()

		itemStore := mocks.NewMockItemStore()
		seedItems(t, itemStore, 1, "A", "B")
		router := newItemRouter(itemStore)

		w := getPath(t, router, "/items/?limit=0")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("empty store lists as empty array", func(t *testing.T) {
		t.Parallel()

		router := newItemRouter(mocks.NewMockItemStore())

		w := getPath(t, router, "/items/")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
