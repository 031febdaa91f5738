// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inwarddesk/inward-desk/auth"
	"github.com/inwarddesk/inward-desk/models"
	"github.com/inwarddesk/inward-desk/testutil"
)

func TestRegister_Success(t *testing.T) {
	store := testutil.NewMemStore()
	cfg := testutil.GetTestConfig()
	h := NewAuthHandler(store, cfg)

	req := testutil.MakeRequest("POST", "/api/auth/register", models.RegisterRequest{
		Email:    "new@example.com",
		Password: "hunter2",
		UserType: models.RoleTableUser,
	}, nil)
	w := httptest.NewRecorder()

	h.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.RegisterResponse
	testutil.AssertJSON(t, w, &resp)

	// The returned token must carry the caller's identity and role
	identity, err := auth.VerifyToken(resp.Token, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("Returned token should verify: %v", err)
	}
	if identity.Email != "new@example.com" {
		t.Errorf("Expected email new@example.com in token, got %s", identity.Email)
	}
	if identity.Role != models.RoleTableUser {
		t.Errorf("Expected role table-user in token, got %s", identity.Role)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := testutil.NewMemStore()
	cfg := testutil.GetTestConfig()
	h := NewAuthHandler(store, cfg)

	testutil.SeedUser(t, store, "taken@example.com", "original-pw", models.RoleTableUser)

	req := testutil.MakeRequest("POST", "/api/auth/register", models.RegisterRequest{
		Email:    "taken@example.com",
		Password: "other-pw",
		UserType: models.RoleTableUser,
	}, nil)
	w := httptest.NewRecorder()

	h.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)

	// The first account's credentials must remain valid
	loginReq := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
		Email:    "taken@example.com",
		Password: "original-pw",
	}, nil)
	loginW := httptest.NewRecorder()

	h.Login(loginW, loginReq)

	testutil.AssertStatus(t, loginW, http.StatusOK)
}

func TestRegister_EmailIsCaseSensitive(t *testing.T) {
	store := testutil.NewMemStore()
	h := NewAuthHandler(store, testutil.GetTestConfig())

	testutil.SeedUser(t, store, "user@example.com", "pw", models.RoleTableUser)

	req := testutil.MakeRequest("POST", "/api/auth/register", models.RegisterRequest{
		Email:    "User@example.com",
		Password: "pw",
	}, nil)
	w := httptest.NewRecorder()

	h.Register(w, req)

	// Equality is exact, so a different casing registers a new account
	testutil.AssertStatus(t, w, http.StatusCreated)
}

func TestRegister_Validation(t *testing.T) {
	testCases := []struct {
		name string
		body models.RegisterRequest
	}{
		{"missing email", models.RegisterRequest{Password: "pw"}},
		{"missing password", models.RegisterRequest{Email: "a@example.com"}},
		{"unknown role", models.RegisterRequest{Email: "a@example.com", Password: "pw", UserType: "superuser"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(testutil.NewMemStore(), testutil.GetTestConfig())

			req := testutil.MakeRequest("POST", "/api/auth/register", tc.body, nil)
			w := httptest.NewRecorder()

			h.Register(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestRegister_DefaultsToTableUser(t *testing.T) {
	store := testutil.NewMemStore()
	cfg := testutil.GetTestConfig()
	h := NewAuthHandler(store, cfg)

	req := testutil.MakeRequest("POST", "/api/auth/register", models.RegisterRequest{
		Email:    "plain@example.com",
		Password: "pw",
	}, nil)
	w := httptest.NewRecorder()

	h.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.RegisterResponse
	testutil.AssertJSON(t, w, &resp)

	identity, err := auth.VerifyToken(resp.Token, cfg.JWTSecret)
	if err != nil {
		t.Fatal(err)
	}
	if identity.Role != models.RoleTableUser {
		t.Errorf("Expected default role table-user, got %s", identity.Role)
	}
}

func TestLogin_Success(t *testing.T) {
	store := testutil.NewMemStore()
	cfg := testutil.GetTestConfig()
	h := NewAuthHandler(store, cfg)

	testutil.SeedUser(t, store, "admin@example.com", "secret", models.RoleAdmin)

	req := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	}, nil)
	w := httptest.NewRecorder()

	h.Login(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LoginResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.UserType != models.RoleAdmin {
		t.Errorf("Expected userType admin, got %s", resp.UserType)
	}

	identity, err := auth.VerifyToken(resp.Token, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("Returned token should verify: %v", err)
	}
	if identity.Role != models.RoleAdmin {
		t.Errorf("Expected role admin in token, got %s", identity.Role)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	store := testutil.NewMemStore()
	h := NewAuthHandler(store, testutil.GetTestConfig())

	testutil.SeedUser(t, store, "user@example.com", "right-pw", models.RoleTableUser)

	testCases := []struct {
		name string
		body models.LoginRequest
	}{
		{"wrong password", models.LoginRequest{Email: "user@example.com", Password: "wrong-pw"}},
		{"unknown email", models.LoginRequest{Email: "nobody@example.com", Password: "right-pw"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/auth/login", tc.body, nil)
			w := httptest.NewRecorder()

			h.Login(w, req)

			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			// No token on failure
			if strings.Contains(w.Body.String(), "token") {
				t.Errorf("Failed login should not issue a token, body: %s", w.Body.String())
			}
		})
	}
}

func TestListUsers_StripsPasswordHashes(t *testing.T) {
	store := testutil.NewMemStore()
	h := NewAuthHandler(store, testutil.GetTestConfig())

	testutil.SeedUser(t, store, "a@example.com", "pw-a", models.RoleAdmin)
	testutil.SeedUser(t, store, "b@example.com", "pw-b", models.RoleTableUser)

	req := testutil.MakeRequest("GET", "/api/auth/users", nil, nil)
	w := httptest.NewRecorder()

	h.ListUsers(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	if strings.Contains(w.Body.String(), "$2a$") {
		t.Error("User listing must not contain bcrypt hashes")
	}

	var users []models.User
	testutil.AssertJSON(t, w, &users)

	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	if users[0].Email != "a@example.com" || users[0].UserType != models.RoleAdmin {
		t.Errorf("Unexpected first user: %+v", users[0])
	}
	if users[1].Email != "b@example.com" || users[1].UserType != models.RoleTableUser {
		t.Errorf("Unexpected second user: %+v", users[1])
	}
}

func TestAuthHandlers_StoreFailure(t *testing.T) {
	failing := testutil.FailingStore{Err: errUpstream}
	h := NewAuthHandler(failing, testutil.GetTestConfig())

	register := testutil.MakeRequest("POST", "/api/auth/register", models.RegisterRequest{
		Email:    "a@example.com",
		Password: "pw",
	}, nil)
	w := httptest.NewRecorder()
	h.Register(w, register)
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	login := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
		Email:    "a@example.com",
		Password: "pw",
	}, nil)
	w = httptest.NewRecorder()
	h.Login(w, login)
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
