package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jparkin/catalog-api/internal/api"
	apiMiddleware "github.com/jparkin/catalog-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	userHandler := api.NewUserHandler(app.userStore, app.itemStore, app.logger)
	itemHandler := api.NewItemHandler(app.itemStore, app.logger)

	// Register routes
	r.Post("/users/", userHandler.CreateUser)
	r.Get("/users/", userHandler.ListUsers)
	r.Get("/users/{user_id}", userHandler.GetUser)
	r.Post("/users/{user_id}/items/", itemHandler.CreateItemForUser)
	r.Get("/items/", itemHandler.ListItems)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
