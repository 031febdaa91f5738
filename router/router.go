// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/inwarddesk/inward-desk/cliparse"
	"github.com/inwarddesk/inward-desk/handlers"
	"github.com/inwarddesk/inward-desk/middleware"
	"github.com/inwarddesk/inward-desk/notify"
	"github.com/inwarddesk/inward-desk/sheetstore"
)

func NewRouter(store sheetstore.Store, hub *notify.Hub, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(store, cfg)
	taskHandler := handlers.NewTaskHandler(store, hub, cfg)

	secret := cfg.JWTSecret

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication (public)
	mux.HandleFunc("POST /api/auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.WithLogging(authHandler.Login))

	// User listing (admin only)
	mux.HandleFunc("GET /api/auth/users", middleware.WithLogging(
		middleware.RequireAuth(secret, middleware.RequireAdmin(authHandler.ListUsers))))

	// Task operations
	mux.HandleFunc("POST /api/tasks", middleware.WithLogging(
		middleware.RequireAuth(secret, middleware.RequireAdmin(taskHandler.Create))))
	mux.HandleFunc("GET /api/tasks", middleware.WithLogging(
		middleware.RequireAuth(secret, taskHandler.List)))
	mux.HandleFunc("GET /api/tasks/user", middleware.WithLogging(
		middleware.RequireAuth(secret, taskHandler.ListForUser)))
	mux.HandleFunc("GET /api/tasks/download", middleware.WithLogging(
		middleware.RequireAuth(secret, taskHandler.Export)))
	mux.HandleFunc("PUT /api/tasks/{inwardNo}/{action}", middleware.WithLogging(
		middleware.RequireAuth(secret, taskHandler.Transition)))

	// Push channel (no logging wrapper: the connection is long-lived)
	mux.HandleFunc("GET /api/events", middleware.RequireAuth(secret,
		func(w http.ResponseWriter, r *http.Request) {
			notify.ServeWS(hub, w, r)
		}))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("inward-desk API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigin, mux)
}
