// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"

	"github.com/inwarddesk/inward-desk/auth"
	"github.com/inwarddesk/inward-desk/models"
)

// TokenHeader carries the bearer token on protected requests.
const TokenHeader = "x-auth-token"

type contextKey int

const identityKey contextKey = iota

// RequireAuth validates the token and attaches the caller's identity to the
// request context. Websocket clients can't set headers from the browser, so
// a "token" query parameter is accepted as a fallback.
func RequireAuth(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(TokenHeader)
		if raw == "" {
			raw = r.URL.Query().Get("token")
		}
		if raw == "" {
			ErrorResponse(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		identity, err := auth.VerifyToken(raw, secret)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Token is not valid")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin rejects callers whose token does not carry the admin role.
// Must be nested inside RequireAuth.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok {
			ErrorResponse(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}
		if identity.Role != models.RoleAdmin {
			ErrorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r)
	}
}

// IdentityFrom returns the authenticated identity attached by RequireAuth.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}
