package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/inwarddesk/inward-desk/cliparse"
	"github.com/inwarddesk/inward-desk/notify"
	"github.com/inwarddesk/inward-desk/router"
	"github.com/inwarddesk/inward-desk/sheetstore"
)

func main() {
	// A .env file is optional; real deployments use real env vars
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the backing spreadsheet
	store, err := sheetstore.NewGoogleStore(context.Background(), cfg.SpreadsheetID, cfg.CredentialsFile)
	if err != nil {
		slog.Error("sheet store initialization failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Sheet store ready", "spreadsheet", cfg.SpreadsheetID)

	// Create the notification hub
	hub := notify.NewHub()

	// Create router
	mux := router.NewRouter(store, hub, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
