// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - SpreadsheetID: Google Sheets spreadsheet ID (required)
  - CredentialsFile: Service account key file (default: credentials.json)
  - JWTSecret: Token signing secret (required)
  - AllowedOrigin: CORS origin allowed to call the API (optional)

# CLI Flags

	-p           Server port
	-s           Spreadsheet ID
	-c           Credentials file path
	--jwt-secret JWT signing secret
	--origin     Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT                    → -p
	GOOGLE_SHEETS_ID        → -s
	GOOGLE_CREDENTIALS_FILE → -c
	JWT_SECRET              → --jwt-secret
	ALLOWED_ORIGIN          → --origin

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded by main before parsing.

# Validation

ParseFlags returns an error if required values are missing:

  - GOOGLE_SHEETS_ID must be provided
  - JWT_SECRET must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	store, err := sheetstore.NewGoogleStore(ctx, cfg.SpreadsheetID, cfg.CredentialsFile)
	// ...
	mux := router.NewRouter(store, hub, cfg)
*/
package cliparse
