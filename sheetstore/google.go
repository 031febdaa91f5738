// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheetstore

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleStore implements Store against a Google Sheets spreadsheet.
type GoogleStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewGoogleStore builds a Store over the given spreadsheet using a service
// account key file.
func NewGoogleStore(ctx context.Context, spreadsheetID, credentialsFile string) (*GoogleStore, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleStore{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *GoogleStore) ReadRange(ctx context.Context, rangeID string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rangeID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", rangeID, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *GoogleStore) AppendRow(ctx context.Context, rangeID string, row []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toAny(row)}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, rangeID, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to range %s: %w", rangeID, err)
	}
	return nil
}

func (s *GoogleStore) UpdateRange(ctx context.Context, rangeID string, rows [][]string) error {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = toAny(row)
	}

	vr := &sheets.ValueRange{Values: values}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rangeID, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", rangeID, err)
	}
	return nil
}

func toAny(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
