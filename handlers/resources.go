// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jharlow/conveyor/dispatch"
	"github.com/jharlow/conveyor/middleware"
	"github.com/jharlow/conveyor/models"
	"github.com/jharlow/conveyor/store"
)

// ResourceHandler owns the route actions for /resources. Every action is a
// dispatch.Handler: it either completes with a response or signals Fail and
// lets the terminal error handler render it. No action formats error JSON
// itself.
type ResourceHandler struct {
	store store.Store
}

func NewResourceHandler(st store.Store) *ResourceHandler {
	return &ResourceHandler{store: st}
}

// validated returns the resource attached by the ValidateResource middleware
// that runs ahead of every /:id action.
func validated(c *dispatch.Ctx) (models.Resource, *dispatch.Failure) {
	v, ok := c.Get(middleware.KeyResource)
	if !ok {
		return models.Resource{}, dispatch.Internal("validated resource missing from context", nil)
	}
	r, ok := v.(models.Resource)
	if !ok {
		return models.Resource{}, dispatch.Internal("validated resource has unexpected type", nil)
	}
	return r, nil
}

// List handles GET /resources. An optional ?name= query narrows the result.
func (h *ResourceHandler) List(c *dispatch.Ctx) dispatch.Signal {
	filter := store.Filter{Name: c.Request.URL.Query().Get("name")}
	rs, err := h.store.Find(filter)
	if err != nil {
		return dispatch.Fail(dispatch.Internal("failed to list resources", err))
	}
	c.JSON(http.StatusOK, rs)
	return dispatch.Complete()
}

// Get handles GET /resources/:id. Runs behind ValidateResource, so the
// entity is already attached.
func (h *ResourceHandler) Get(c *dispatch.Ctx) dispatch.Signal {
	r, f := validated(c)
	if f != nil {
		return dispatch.Fail(f)
	}
	c.JSON(http.StatusOK, r)
	return dispatch.Complete()
}

// Create handles POST /resources. Runs behind RequireBody.
func (h *ResourceHandler) Create(c *dispatch.Ctx) dispatch.Signal {
	var req models.CreateResourceRequest
	if err := c.BindBody(&req); err != nil {
		return dispatch.Fail(dispatch.BadRequest("invalid JSON"))
	}
	if req.Name == "" {
		return dispatch.Fail(dispatch.BadRequest("name is required"))
	}

	r, err := h.store.Add(req)
	if err != nil {
		return dispatch.Fail(dispatch.Internal("failed to create resource", err))
	}
	c.JSON(http.StatusCreated, r)
	return dispatch.Complete()
}

// Update handles PUT /resources/:id. Runs behind ValidateResource and
// RequireBody.
func (h *ResourceHandler) Update(c *dispatch.Ctx) dispatch.Signal {
	r, f := validated(c)
	if f != nil {
		return dispatch.Fail(f)
	}

	var req models.UpdateResourceRequest
	if err := c.BindBody(&req); err != nil {
		return dispatch.Fail(dispatch.BadRequest("invalid JSON"))
	}
	if req.Name == "" {
		return dispatch.Fail(dispatch.BadRequest("name is required"))
	}

	updated, err := h.store.Update(r.ID, req)
	if errors.Is(err, store.ErrNotFound) {
		return dispatch.Fail(dispatch.NotFound("invalid id"))
	}
	if err != nil {
		return dispatch.Fail(dispatch.Internal("failed to update resource", err))
	}
	c.JSON(http.StatusOK, updated)
	return dispatch.Complete()
}

// Delete handles DELETE /resources/:id. Not validated up front; a remove
// count of zero is the not-found signal.
func (h *ResourceHandler) Delete(c *dispatch.Ctx) dispatch.Signal {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return dispatch.Fail(dispatch.NotFound("invalid id"))
	}

	n, err := h.store.Remove(id)
	if err != nil {
		return dispatch.Fail(dispatch.Internal("failed to delete resource", err))
	}
	if n == 0 {
		return dispatch.Fail(dispatch.NotFound("invalid id"))
	}
	c.JSON(http.StatusOK, models.DeleteResourceResponse{Removed: n})
	return dispatch.Complete()
}
