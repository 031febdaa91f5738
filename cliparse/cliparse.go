package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port            int
	SpreadsheetID   string
	CredentialsFile string
	JWTSecret       string
	AllowedOrigin   string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("inward-desk", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.SpreadsheetID, "s", "", "Google Sheets spreadsheet ID")
	fs.StringVar(&cfg.CredentialsFile, "c", "", "Google service account credentials file")
	fs.StringVar(&cfg.AllowedOrigin, "origin", "", "Allowed CORS origin")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "JWT signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.SpreadsheetID == "" {
		cfg.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_ID")
	}
	if cfg.SpreadsheetID == "" {
		return Config{}, errors.New("spreadsheet ID required (use -s or GOOGLE_SHEETS_ID env)")
	}

	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = os.Getenv("GOOGLE_CREDENTIALS_FILE")
		if cfg.CredentialsFile == "" {
			cfg.CredentialsFile = "credentials.json"
		}
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	}

	return cfg, nil
}
