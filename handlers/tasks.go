// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/inwarddesk/inward-desk/cliparse"
	"github.com/inwarddesk/inward-desk/middleware"
	"github.com/inwarddesk/inward-desk/models"
	"github.com/inwarddesk/inward-desk/notify"
	"github.com/inwarddesk/inward-desk/sheetstore"
)

// inwardLocks serializes read-modify-write sequences per inward number so
// two concurrent transitions on the same task cannot interleave and lose an
// update. Entries are never removed; the key space is small.
type inwardLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func newInwardLocks() *inwardLocks {
	return &inwardLocks{m: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for inwardNo and returns its unlock func.
func (l *inwardLocks) lock(inwardNo string) func() {
	l.mu.Lock()
	keyMu, ok := l.m[inwardNo]
	if !ok {
		keyMu = &sync.Mutex{}
		l.m[inwardNo] = keyMu
	}
	l.mu.Unlock()

	keyMu.Lock()
	return keyMu.Unlock
}

type TaskHandler struct {
	store sheetstore.Store
	hub   *notify.Hub
	cfg   cliparse.Config
	locks *inwardLocks
}

func NewTaskHandler(store sheetstore.Store, hub *notify.Hub, cfg cliparse.Config) *TaskHandler {
	return &TaskHandler{store: store, hub: hub, cfg: cfg, locks: newInwardLocks()}
}

// Create handles POST /api/tasks (admin only, enforced by the router)
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.InwardNo == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "inwardNo is required")
		return
	}
	if req.AssignedTo == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "assignedTo is required")
		return
	}

	// The inward number is the lookup key for transitions, so a duplicate
	// would make later row lookups ambiguous.
	unlock := h.locks.lock(req.InwardNo)
	defer unlock()

	rows, err := h.store.ReadRange(r.Context(), sheetstore.TasksRange)
	if err != nil {
		slog.Error("failed to read tasks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}
	for _, row := range rows {
		if sheetstore.DecodeTask(row).InwardNo == req.InwardNo {
			middleware.ErrorResponse(w, http.StatusConflict, "Task with this inward number already exists")
			return
		}
	}

	task := models.Task{
		InwardNo:    req.InwardNo,
		Subject:     req.Subject,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		AssignedTo:  req.AssignedTo,
		Status:      models.StatusPending,
	}

	if err := h.store.AppendRow(r.Context(), sheetstore.TasksRange, sheetstore.EncodeTask(task)); err != nil {
		slog.Error("failed to append task", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("task created", "inwardNo", task.InwardNo, "assignedTo", task.AssignedTo)

	// Publish before responding so the push is observable by response time
	h.hub.Publish(models.EventNewTask, task)

	middleware.JSONResponse(w, http.StatusCreated, models.TaskResponse{
		Msg:  "Task created successfully",
		Task: task,
	})
}

// List handles GET /api/tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ReadRange(r.Context(), sheetstore.TasksRange)
	if err != nil {
		slog.Error("failed to read tasks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	tasks := []models.Task{}
	for _, row := range rows {
		tasks = append(tasks, sheetstore.DecodeTask(row))
	}

	middleware.JSONResponse(w, http.StatusOK, tasks)
}

// ListForUser handles GET /api/tasks/user, filtered to the caller
func (h *TaskHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	rows, err := h.store.ReadRange(r.Context(), sheetstore.TasksRange)
	if err != nil {
		slog.Error("failed to read tasks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	tasks := []models.Task{}
	for _, row := range rows {
		task := sheetstore.DecodeTask(row)
		if task.AssignedTo == identity.Email {
			tasks = append(tasks, task)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, tasks)
}

// Transition handles PUT /api/tasks/{inwardNo}/{action}
func (h *TaskHandler) Transition(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	inwardNo := r.PathValue("inwardNo")
	action := r.PathValue("action")
	if inwardNo == "" || action == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "inwardNo and action are required")
		return
	}

	// Body is optional except for forward
	var req models.TransitionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	unlock := h.locks.lock(inwardNo)
	defer unlock()

	rows, err := h.store.ReadRange(r.Context(), sheetstore.TasksRange)
	if err != nil {
		slog.Error("failed to read tasks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	// First match wins
	index := -1
	for i, row := range rows {
		if sheetstore.DecodeTask(row).InwardNo == inwardNo {
			index = i
			break
		}
	}
	if index == -1 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Task not found")
		return
	}

	task := sheetstore.DecodeTask(rows[index])

	// Only the current assignee may act on a task
	if task.AssignedTo != identity.Email {
		middleware.ErrorResponse(w, http.StatusForbidden, "Not authorized")
		return
	}

	// Any action is legal from any current status; the status machine is
	// deliberately permissive.
	switch action {
	case models.ActionAccept:
		task.Status = models.StatusAccepted
	case models.ActionForward:
		if req.ForwardTo == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "forwardTo is required")
			return
		}
		task.AssignedTo = req.ForwardTo
		task.Status = models.StatusPending
	case models.ActionComplete:
		task.Status = models.StatusCompleted
	case models.ActionFail:
		task.Status = models.StatusFailed
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid action")
		return
	}

	// Overwrite the row in place at its scan position
	rowRange := sheetstore.TaskRowRange(index)
	if err := h.store.UpdateRange(r.Context(), rowRange, [][]string{sheetstore.EncodeTask(task)}); err != nil {
		slog.Error("failed to update task", "error", err, "range", rowRange)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("task transitioned",
		"inwardNo", task.InwardNo,
		"action", action,
		"status", task.Status,
		"assignedTo", task.AssignedTo,
	)

	h.hub.Publish(models.EventTaskUpdated, task)

	middleware.JSONResponse(w, http.StatusOK, models.TaskResponse{
		Msg:  "Task updated successfully",
		Task: task,
	})
}
