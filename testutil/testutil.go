// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/inwarddesk/inward-desk/auth"
	"github.com/inwarddesk/inward-desk/cliparse"
	"github.com/inwarddesk/inward-desk/models"
	"github.com/inwarddesk/inward-desk/sheetstore"
)

// MemStore is an in-memory sheetstore.Store, one table per sheet name.
// It understands the same range shapes the handlers use: whole-range reads
// and appends ("Tasks!A:H") and single-row overwrites ("Tasks!A3:H3").
type MemStore struct {
	mu     sync.Mutex
	tables map[string][][]string
}

func NewMemStore() *MemStore {
	return &MemStore{tables: make(map[string][][]string)}
}

// sheetName returns the part of the range before '!'.
func sheetName(rangeID string) string {
	if i := strings.IndexByte(rangeID, '!'); i >= 0 {
		return rangeID[:i]
	}
	return rangeID
}

// rowNumber extracts the 1-based row from a single-row reference like
// "A3:H3". Whole-column references ("A:H") have no digits and return false.
func rowNumber(rangeID string) (int, bool) {
	ref := rangeID
	if i := strings.IndexByte(ref, '!'); i >= 0 {
		ref = ref[i+1:]
	}
	if i := strings.IndexByte(ref, ':'); i >= 0 {
		ref = ref[:i]
	}
	digits := strings.TrimLeft(ref, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m *MemStore) ReadRange(ctx context.Context, rangeID string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	table := m.tables[sheetName(rangeID)]
	out := make([][]string, len(table))
	for i, row := range table {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *MemStore) AppendRow(ctx context.Context, rangeID string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sheet := sheetName(rangeID)
	m.tables[sheet] = append(m.tables[sheet], append([]string(nil), row...))
	return nil
}

func (m *MemStore) UpdateRange(ctx context.Context, rangeID string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sheet := sheetName(rangeID)
	start, ok := rowNumber(rangeID)
	if !ok {
		// Whole-range overwrite
		m.tables[sheet] = rows
		return nil
	}

	table := m.tables[sheet]
	for i, row := range rows {
		idx := start - 1 + i
		if idx < 0 || idx >= len(table) {
			return fmt.Errorf("row %d out of range for sheet %s", idx+1, sheet)
		}
		table[idx] = append([]string(nil), row...)
	}
	return nil
}

// FailingStore returns Err from every operation; used to exercise the
// upstream-failure paths.
type FailingStore struct {
	Err error
}

func (f FailingStore) ReadRange(ctx context.Context, rangeID string) ([][]string, error) {
	return nil, f.Err
}

func (f FailingStore) AppendRow(ctx context.Context, rangeID string, row []string) error {
	return f.Err
}

func (f FailingStore) UpdateRange(ctx context.Context, rangeID string, rows [][]string) error {
	return f.Err
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		SpreadsheetID: "test-spreadsheet",
		JWTSecret:     "test-jwt-secret",
	}
}

// MintToken signs a token for the given identity using the test secret
func MintToken(t *testing.T, cfg cliparse.Config, email, role string) string {
	t.Helper()

	token, err := auth.SignToken(auth.Identity{Email: email, Role: role}, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return token
}

// SeedUser appends a user row with a bcrypt hash of the given password
func SeedUser(t *testing.T, store *MemStore, email, password, role string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	record := models.UserRecord{
		ID:           "1700000000000",
		Email:        email,
		PasswordHash: hash,
		UserType:     role,
	}
	if err := store.AppendRow(context.Background(), sheetstore.UsersRange, sheetstore.EncodeUser(record)); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
}

// SeedTask appends a task row and returns the task
func SeedTask(t *testing.T, store *MemStore, inwardNo, assignedTo, status string) models.Task {
	t.Helper()

	task := models.Task{
		InwardNo:    inwardNo,
		Subject:     "Test subject",
		Description: "Test description",
		StartDate:   "2025-01-01",
		EndDate:     "2025-01-31",
		AssignedTo:  assignedTo,
		Status:      status,
	}
	if err := store.AppendRow(context.Background(), sheetstore.TasksRange, sheetstore.EncodeTask(task)); err != nil {
		t.Fatalf("Failed to seed task: %v", err)
	}
	return task
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
