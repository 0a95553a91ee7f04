// Package main implements the entry point for the catalog API server,
// a small JSON service exposing users and the items they own.
package main

import (
	"context"
	"log"
)

// main wires configuration, logging, the database connection and the HTTP
// server together, then serves until interrupted.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
