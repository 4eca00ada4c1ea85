// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"strconv"

	"github.com/jharlow/conveyor/dispatch"
	"github.com/jharlow/conveyor/store"
)

// ValidateResource resolves the path parameter param through the store and
// attaches the found resource under KeyResource. Absent (or non-numeric) ids
// fail as not found; store errors fail as internal. Either way the wrapped
// route action never runs.
func ValidateResource(param string, st store.Store) dispatch.Handler {
	return func(c *dispatch.Ctx) dispatch.Signal {
		id, err := strconv.ParseInt(c.Param(param), 10, 64)
		if err != nil {
			return dispatch.Fail(dispatch.NotFound("invalid id"))
		}

		r, err := st.FindByID(id)
		if errors.Is(err, store.ErrNotFound) {
			return dispatch.Fail(dispatch.NotFound("invalid id"))
		}
		if err != nil {
			return dispatch.Fail(dispatch.Internal("resource lookup failed", err))
		}

		c.Set(KeyResource, r)
		return dispatch.Continue()
	}
}

// RequireBody fails with bad request unless the request carries a JSON
// object with at least one attribute. The parsed body stays cached on the
// Ctx for the route action.
func RequireBody() dispatch.Handler {
	return func(c *dispatch.Ctx) dispatch.Signal {
		obj, err := c.BodyObject()
		if errors.Is(err, dispatch.ErrNoBody) {
			return dispatch.Fail(dispatch.BadRequest("body is required"))
		}
		if err != nil {
			return dispatch.Fail(dispatch.BadRequest("invalid JSON"))
		}
		if len(obj) == 0 {
			return dispatch.Fail(dispatch.BadRequest("body is required"))
		}
		return dispatch.Continue()
	}
}
