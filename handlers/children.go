// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/jharlow/conveyor/dispatch"
	"github.com/jharlow/conveyor/models"
)

// ListChildren handles GET /resources/:id/children. Runs behind
// ValidateResource on the parent.
func (h *ResourceHandler) ListChildren(c *dispatch.Ctx) dispatch.Signal {
	parent, f := validated(c)
	if f != nil {
		return dispatch.Fail(f)
	}

	cs, err := h.store.FindChildren(parent.ID)
	if err != nil {
		return dispatch.Fail(dispatch.Internal("failed to list children", err))
	}
	c.JSON(http.StatusOK, cs)
	return dispatch.Complete()
}

// CreateChild handles POST /resources/:id/children. Runs behind
// ValidateResource and RequireBody. Responds 201 like every other create.
func (h *ResourceHandler) CreateChild(c *dispatch.Ctx) dispatch.Signal {
	parent, f := validated(c)
	if f != nil {
		return dispatch.Fail(f)
	}

	var req models.CreateChildRequest
	if err := c.BindBody(&req); err != nil {
		return dispatch.Fail(dispatch.BadRequest("invalid JSON"))
	}
	if req.Name == "" {
		return dispatch.Fail(dispatch.BadRequest("name is required"))
	}

	child, err := h.store.AddChild(parent.ID, req)
	if err != nil {
		return dispatch.Fail(dispatch.Internal("failed to create child", err))
	}
	c.JSON(http.StatusCreated, child)
	return dispatch.Complete()
}
