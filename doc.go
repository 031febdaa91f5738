// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Inward Desk API server.

Inward Desk is a small internal task tracker: admins create "inward" work
items assigned to users, users accept/forward/complete/fail them, and all
relevant clients see live updates over a websocket push channel. All
persistent state lives in a Google Sheets spreadsheet used as a row store.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	GOOGLE_SHEETS_ID=... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 5000 -s "<spreadsheet-id>" -c credentials.json

A .env file in the working directory is loaded at startup if present.

# Configuration

Required settings:

  - GOOGLE_SHEETS_ID (-s): Spreadsheet holding the Users and Tasks ranges
  - JWT_SECRET (--jwt-secret): Token signing secret

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - GOOGLE_CREDENTIALS_FILE (-c): Service account key (default: credentials.json)
  - ALLOWED_ORIGIN (--origin): CORS origin (default: reflect request origin)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, tasks, export)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, access gate
  - models: Request/response and domain types
  - auth: Password hashing and token signing
  - sheetstore: Google Sheets row-store adapter
  - notify: Identity-keyed websocket event hub
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
