// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: email, password, userType
  - LoginRequest: email, password
  - CreateTaskRequest: inwardNo, subject, description, startDate, endDate, assignedTo
  - TransitionRequest: forwardTo (forward action only)

# Response Types

Types for JSON responses:

  - RegisterResponse: token
  - LoginResponse: token, userType
  - TaskResponse: msg, task
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: public account view (no password hash)
  - UserRecord: full stored row including the bcrypt hash
  - Task: inward work item with assignee and status
  - Event: push-channel frame (event name + task payload)

# Constants

Task status values:

	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
	StatusFailed    = "failed"

Roles:

	RoleAdmin     = "admin"
	RoleTableUser = "table-user"

Transition actions:

	ActionAccept   = "accept"
	ActionForward  = "forward"
	ActionComplete = "complete"
	ActionFail     = "fail"

Push events:

	EventNewTask     = "newTask"
	EventTaskUpdated = "taskUpdated"
*/
package models
