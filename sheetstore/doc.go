// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheetstore adapts a Google Sheets spreadsheet into a row store.

The spreadsheet is the single source of truth. Two named ranges hold all
persistent state:

	Users!A:D  id, email, passwordHash, role
	Tasks!A:H  inwardNo, subject, description, startDate, endDate, assignedTo, status

# Store Interface

Handlers depend on the Store interface, not the Google client, so tests can
substitute an in-memory table:

	type Store interface {
		ReadRange(ctx context.Context, rangeID string) ([][]string, error)
		AppendRow(ctx context.Context, rangeID string, row []string) error
		UpdateRange(ctx context.Context, rangeID string, rows [][]string) error
	}

There is no caching layer: every request re-reads the backing range, so
reads always reflect the spreadsheet's current state.

# Production Store

NewGoogleStore builds a Store over the Sheets v4 API with a service account
key file:

	store, err := sheetstore.NewGoogleStore(ctx, spreadsheetID, "credentials.json")

All values are written with ValueInputOption RAW so the spreadsheet never
reinterprets dates or numbers.

# Row Codecs

DecodeUser/EncodeUser and DecodeTask/EncodeTask translate between range rows
and domain types. Decoders tolerate short rows because the Sheets API trims
trailing empty cells.

# Positional Updates

Task updates overwrite a single row in place. TaskRowRange maps a scan index
to its A1 address:

	sheetstore.TaskRowRange(2) // "Tasks!A3:H3"
*/
package sheetstore
