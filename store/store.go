// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"

	"github.com/jharlow/conveyor/models"
)

// ErrNotFound is returned when the requested entity is absent. Callers
// translate it into a NotFound failure; any other error is internal.
var ErrNotFound = errors.New("store: not found")

// Filter narrows a Find. Zero value matches everything.
type Filter struct {
	Name string
}

// Store is the data-access collaborator the handlers delegate to. Any
// operation may fail with a generic I/O error; absence is always signaled
// with ErrNotFound, never with a nil entity.
type Store interface {
	Find(filter Filter) ([]models.Resource, error)
	FindByID(id int64) (models.Resource, error)
	Add(req models.CreateResourceRequest) (models.Resource, error)
	Update(id int64, req models.UpdateResourceRequest) (models.Resource, error)
	Remove(id int64) (int64, error)

	FindChildren(parentID int64) ([]models.Child, error)
	AddChild(parentID int64, req models.CreateChildRequest) (models.Child, error)
}
