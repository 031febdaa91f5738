// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/inwarddesk/inward-desk/middleware"
	"github.com/inwarddesk/inward-desk/sheetstore"
)

// exportColumns defines the fixed header order of the exported workbook.
var exportColumns = []struct {
	header string
	width  float64
}{
	{"Inward No", 15},
	{"Subject", 30},
	{"Description", 50},
	{"Start Date", 15},
	{"End Date", 15},
	{"Assigned To", 30},
	{"Status", 15},
}

// Export handles GET /api/tasks/download, returning all tasks as an .xlsx
// attachment with one header row followed by one row per task.
func (h *TaskHandler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ReadRange(r.Context(), sheetstore.TasksRange)
	if err != nil {
		slog.Error("failed to read tasks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tasks"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		slog.Error("failed to rename sheet", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col.header
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			slog.Error("failed to compute column name", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
			return
		}
		if err := f.SetColWidth(sheet, name, name, col.width); err != nil {
			slog.Error("failed to set column width", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
			return
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		slog.Error("failed to write header row", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	for i, row := range rows {
		task := sheetstore.DecodeTask(row)
		cells := []interface{}{
			task.InwardNo,
			task.Subject,
			task.Description,
			task.StartDate,
			task.EndDate,
			task.AssignedTo,
			task.Status,
		}
		// Data starts on row 2, below the header
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			slog.Error("failed to write task row", "error", err, "row", i+2)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename=tasks.xlsx`)

	if err := f.Write(w); err != nil {
		// Headers are already sent; nothing left to do but log
		slog.Error("failed to stream workbook", "error", err)
		return
	}

	slog.Info("tasks exported", "rows", len(rows))
}
