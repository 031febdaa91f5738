// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inwarddesk/inward-desk/models"
)

func TestWithLogging(t *testing.T) {
	// Create a simple handler that returns OK
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	// Wrap with logging middleware
	wrappedHandler := WithLogging(testHandler)

	// Create test request and recorder
	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	// Execute
	wrappedHandler(w, req)

	// Verify handler was called
	if !handlerCalled {
		t.Error("Expected handler to be called")
	}

	// Verify response was written correctly
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"message": "hello"},
			expected:   `{"message":"hello"}`,
		},
		{
			name:       "register response",
			statusCode: http.StatusCreated,
			data:       models.RegisterResponse{Token: "abc123"},
			expected:   `{"token":"abc123"}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "Bad Request", Message: "missing field"},
			expected:   `{"error":"Bad Request","message":"missing field"}`,
		},
		{
			name:       "array data",
			statusCode: http.StatusOK,
			data:       []string{"a", "b", "c"},
			expected:   `["a","b","c"]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			// Check status code
			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			// Check content type
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type application/json, got %s", ct)
			}

			// Check body (Encode adds a trailing newline)
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body %s, got %s", tc.expected, body)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"a@example.com","password":"pw"}`))

	var body models.LoginRequest
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}

	if body.Email != "a@example.com" {
		t.Errorf("Expected email a@example.com, got %s", body.Email)
	}
	if body.Password != "pw" {
		t.Errorf("Expected password pw, got %s", body.Password)
	}
}

func TestParseJSONBody_Invalid(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader("not json"))

	var body models.LoginRequest
	if err := ParseJSONBody(req, &body); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS("https://desk.example.com", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run for OPTIONS")
	}))

	req := httptest.NewRequest("OPTIONS", "/api/tasks", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://desk.example.com" {
		t.Errorf("Expected configured origin, got %s", got)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "x-auth-token") {
		t.Error("Expected x-auth-token in allowed headers")
	}
}

func TestCORS_ReflectsOriginWhenUnset(t *testing.T) {
	handler := CORS("", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected reflected origin, got %s", got)
	}
}
