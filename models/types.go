// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Database type constants
const (
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// Entities

type Resource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Child struct {
	ID         int64  `json:"id"`
	ResourceID int64  `json:"resource_id"`
	Name       string `json:"name"`
}

// Request types

type CreateResourceRequest struct {
	Name string `json:"name"`
}

type UpdateResourceRequest struct {
	Name string `json:"name"`
}

type CreateChildRequest struct {
	Name string `json:"name"`
}

// Response types

type DeleteResourceResponse struct {
	Removed int64 `json:"removed"`
}

// ErrorResponse is the single error shape rendered to clients. Only the
// terminal error handler produces it.
type ErrorResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}
