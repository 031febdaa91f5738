// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Inward Desk API.

# Handler Types

Each handler is a struct with row-store, hub, and config dependencies:

  - AuthHandler: registration, login, user listing
  - TaskHandler: task creation, listing, transitions, export

Handlers are created via constructor functions:

	authHandler := handlers.NewAuthHandler(store, cfg)
	taskHandler := handlers.NewTaskHandler(store, hub, cfg)

# Authentication Flow

	POST /api/auth/register → Register (returns token, role claim embedded)
	POST /api/auth/login    → Login (returns token + userType)
	GET  /api/auth/users    → ListUsers (admin only)

Register enforces email uniqueness with a full-table scan serialized behind
a mutex, so concurrent registrations of the same email cannot both succeed.

# Task Lifecycle

Tasks start pending and move through a four-way status switch driven by the
current assignee:

	PUT /api/tasks/{inwardNo}/{action}

	accept   → status accepted
	forward  → assignedTo = body.forwardTo, status pending
	complete → status completed
	fail     → status failed

Any other action is rejected with 400. Only the current assignee may act;
anyone else gets 403. Lookup is first-match on inwardNo over a full-range
read; creation rejects a duplicate inwardNo with 409 so lookups stay
unambiguous. Transitions on the same inwardNo are serialized per key to
avoid lost updates in the read-modify-write sequence.

Mutations publish to the notification hub before the HTTP response is
written: newTask on creation, taskUpdated on transitions.

# Export

	GET /api/tasks/download

Renders all tasks into an .xlsx workbook (excelize) with a fixed header row
and one data row per task, served as attachment tasks.xlsx.
*/
package handlers
