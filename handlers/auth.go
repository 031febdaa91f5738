// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/inwarddesk/inward-desk/auth"
	"github.com/inwarddesk/inward-desk/cliparse"
	"github.com/inwarddesk/inward-desk/middleware"
	"github.com/inwarddesk/inward-desk/models"
	"github.com/inwarddesk/inward-desk/sheetstore"
)

type AuthHandler struct {
	store sheetstore.Store
	cfg   cliparse.Config

	// Serializes register's check-then-append so two concurrent
	// registrations of the same email cannot both pass the scan.
	registerMu sync.Mutex
}

func NewAuthHandler(store sheetstore.Store, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: store, cfg: cfg}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}
	if req.UserType == "" {
		req.UserType = models.RoleTableUser
	}
	if req.UserType != models.RoleAdmin && req.UserType != models.RoleTableUser {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userType must be admin or table-user")
		return
	}

	h.registerMu.Lock()
	defer h.registerMu.Unlock()

	// Check if user already exists (case-sensitive match on email)
	rows, err := h.store.ReadRange(r.Context(), sheetstore.UsersRange)
	if err != nil {
		slog.Error("failed to read users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}
	for _, row := range rows {
		if sheetstore.DecodeUser(row).Email == req.Email {
			middleware.ErrorResponse(w, http.StatusConflict, "User already exists")
			return
		}
	}

	// Hash password
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	// Append the new user row
	record := models.UserRecord{
		ID:           strconv.FormatInt(time.Now().UnixMilli(), 10),
		Email:        req.Email,
		PasswordHash: hash,
		UserType:     req.UserType,
	}
	if err := h.store.AppendRow(r.Context(), sheetstore.UsersRange, sheetstore.EncodeUser(record)); err != nil {
		slog.Error("failed to append user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	token, err := auth.SignToken(auth.Identity{Email: req.Email, Role: req.UserType}, h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("user registered", "email", req.Email, "role", req.UserType)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{Token: token})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rows, err := h.store.ReadRange(r.Context(), sheetstore.UsersRange)
	if err != nil {
		slog.Error("failed to read users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	var record models.UserRecord
	found := false
	for _, row := range rows {
		u := sheetstore.DecodeUser(row)
		if u.Email == req.Email {
			record = u
			found = true
			break
		}
	}

	// Same response for unknown email and wrong password
	if !found || !auth.CheckPassword(record.PasswordHash, req.Password) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.SignToken(auth.Identity{Email: record.Email, Role: record.UserType}, h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("user logged in", "email", record.Email, "role", record.UserType)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:    token,
		UserType: record.UserType,
	})
}

// ListUsers handles GET /api/auth/users (admin only, enforced by the router)
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ReadRange(r.Context(), sheetstore.UsersRange)
	if err != nil {
		slog.Error("failed to read users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	users := []models.User{}
	for _, row := range rows {
		record := sheetstore.DecodeUser(row)
		users = append(users, models.User{
			ID:       record.ID,
			Email:    record.Email,
			UserType: record.UserType,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}
