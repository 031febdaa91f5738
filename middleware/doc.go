// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware, the access gate, and JSON helpers.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Access Gate

RequireAuth validates the x-auth-token header (or ?token= query parameter
for websocket clients), resolves the caller's identity from the token, and
attaches it to the request context:

	mux.HandleFunc("GET /api/tasks", middleware.RequireAuth(secret, handler))

Downstream handlers read the identity back:

	identity, ok := middleware.IdentityFrom(r.Context())

RequireAdmin nests inside RequireAuth and rejects non-admin roles with 403:

	middleware.RequireAuth(secret, middleware.RequireAdmin(handler))

Authorization is driven entirely by the role claim verified in the token;
no request reaches an admin handler without it.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers Content-Type
and x-auth-token.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
