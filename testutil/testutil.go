// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/jharlow/conveyor/cliparse"
	"github.com/jharlow/conveyor/db"
	"github.com/jharlow/conveyor/models"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full schema.
// The pool is pinned to one connection so every query sees the same
// in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, models.DBTypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseType: models.DBTypeSQLite,
		ServiceName:  "conveyor-test",
	}
}

// CreateTestResource inserts a resource and returns its id.
func CreateTestResource(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`INSERT INTO resource (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test resource: %v", err)
	}
	return id
}

// CreateTestChild inserts a child of the given resource and returns its id.
func CreateTestChild(t *testing.T, conn *sql.DB, resourceID int64, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(
		`INSERT INTO child (resource_id, name) VALUES ($1, $2) RETURNING id`,
		resourceID, name,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test child: %v", err)
	}
	return id
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
