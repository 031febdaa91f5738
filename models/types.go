// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Task status constants
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// User role constants
const (
	RoleAdmin     = "admin"
	RoleTableUser = "table-user"
)

// Transition action constants
const (
	ActionAccept   = "accept"
	ActionForward  = "forward"
	ActionComplete = "complete"
	ActionFail     = "fail"
)

// Push event names
const (
	EventNewTask     = "newTask"
	EventTaskUpdated = "taskUpdated"
)

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	InwardNo    string `json:"inwardNo"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	AssignedTo  string `json:"assignedTo"`
}

type TransitionRequest struct {
	ForwardTo string `json:"forwardTo,omitempty"`
}

// Response types

type RegisterResponse struct {
	Token string `json:"token"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserType string `json:"userType"`
}

type TaskResponse struct {
	Msg  string `json:"msg"`
	Task Task   `json:"task"`
}

// Domain types

// User is the public view of an account; the password hash is never included.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// UserRecord is the full stored user row, hash included. Internal only.
type UserRecord struct {
	ID           string
	Email        string
	PasswordHash string
	UserType     string
}

// Task is an inward work item routed to a user for action.
// Dates are opaque strings, stored exactly as submitted.
type Task struct {
	InwardNo    string `json:"inwardNo"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	AssignedTo  string `json:"assignedTo"`
	Status      string `json:"status"`
}

// Event is a push-channel frame delivered to subscribed clients.
type Event struct {
	Event string `json:"event"`
	Task  Task   `json:"task"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
