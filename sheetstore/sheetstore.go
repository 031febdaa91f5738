// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheetstore

import (
	"context"
	"fmt"

	"github.com/inwarddesk/inward-desk/models"
)

// Named ranges in the backing spreadsheet.
const (
	UsersRange = "Users!A:D"
	TasksRange = "Tasks!A:H"
)

// Store is the row-oriented view of the backing spreadsheet. There is no
// caching and no transactions; every call is a full network round trip.
type Store interface {
	// ReadRange returns all rows in the named range, in sheet order.
	ReadRange(ctx context.Context, rangeID string) ([][]string, error)
	// AppendRow appends a single row after the last row of the range.
	AppendRow(ctx context.Context, rangeID string, row []string) error
	// UpdateRange overwrites the addressed cells with the given rows.
	UpdateRange(ctx context.Context, rangeID string, rows [][]string) error
}

// TaskRowRange addresses the single task row at scan index i.
// Sheet rows are 1-based, so index 0 maps to Tasks!A1:H1.
func TaskRowRange(i int) string {
	return fmt.Sprintf("Tasks!A%d:H%d", i+1, i+1)
}

// cell returns row[i], tolerating rows the backend trimmed short
// (trailing empty cells are not returned by the Sheets API).
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// DecodeUser maps a Users range row to a UserRecord.
// Column layout: id, email, passwordHash, role.
func DecodeUser(row []string) models.UserRecord {
	return models.UserRecord{
		ID:           cell(row, 0),
		Email:        cell(row, 1),
		PasswordHash: cell(row, 2),
		UserType:     cell(row, 3),
	}
}

// EncodeUser maps a UserRecord to a Users range row.
func EncodeUser(u models.UserRecord) []string {
	return []string{u.ID, u.Email, u.PasswordHash, u.UserType}
}

// DecodeTask maps a Tasks range row to a Task.
// Column layout: inwardNo, subject, description, startDate, endDate, assignedTo, status.
func DecodeTask(row []string) models.Task {
	return models.Task{
		InwardNo:    cell(row, 0),
		Subject:     cell(row, 1),
		Description: cell(row, 2),
		StartDate:   cell(row, 3),
		EndDate:     cell(row, 4),
		AssignedTo:  cell(row, 5),
		Status:      cell(row, 6),
	}
}

// EncodeTask maps a Task to a Tasks range row.
func EncodeTask(t models.Task) []string {
	return []string{t.InwardNo, t.Subject, t.Description, t.StartDate, t.EndDate, t.AssignedTo, t.Status}
}
