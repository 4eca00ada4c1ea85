// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/jharlow/conveyor/cliparse"
	"github.com/jharlow/conveyor/db"
	"github.com/jharlow/conveyor/middleware"
	"github.com/jharlow/conveyor/models"
	"github.com/jharlow/conveyor/router"
	"github.com/jharlow/conveyor/store"
)

// driverName maps the configured database type to its registered driver.
func driverName(dbType string) string {
	if dbType == models.DBTypePostgres {
		return "postgres"
	}
	return "sqlite"
}

func main() {
	// Optional .env for local development; absence is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Skipping .env", "error", err)
	}

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	dbConn, err := sql.Open(driverName(cfg.DatabaseType), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// The chain is assembled once; requests share the immutable handler
	// list, never its walk state.
	chain := router.New(store.NewSQL(dbConn), cfg, slog.Default())

	server := http.Server{
		Handler: middleware.CORS(chain),
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

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
