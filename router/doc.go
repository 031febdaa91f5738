// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Inward Desk API.

# Route Registration

NewRouter creates a configured handler with all endpoints:

	handler := router.NewRouter(store, hub, cfg)

# Endpoints

Health:

	GET /health

Authentication (public):

	POST /api/auth/register - Create account, returns token
	POST /api/auth/login    - Returns token + userType

Admin only (token with admin role):

	GET  /api/auth/users - List accounts (no password hashes)
	POST /api/tasks      - Create a task, publishes newTask

Authenticated:

	GET /api/tasks                      - All tasks
	GET /api/tasks/user                 - Tasks assigned to the caller
	GET /api/tasks/download             - .xlsx export
	PUT /api/tasks/{inwardNo}/{action}  - accept/forward/complete/fail
	GET /api/events                     - Websocket push channel

# Middleware Stack

Every API route is wrapped in request logging; protected routes add the
access gate, and admin routes nest a role check inside it:

	middleware.WithLogging(middleware.RequireAuth(secret,
		middleware.RequireAdmin(handler)))

The websocket route skips the logging wrapper because the connection stays
open for the client's whole session.

CORS is applied once around the whole mux with the configured origin.
*/
package router
