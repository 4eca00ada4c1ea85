// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"

	"github.com/jharlow/conveyor/dispatch"
	"github.com/jharlow/conveyor/models"
)

// ErrorRenderer is the terminal error handler: the one place error JSON is
// produced. It maps the stashed failure kind to a status (unclassified
// failures default to 400) and renders {message, kind}. Internal causes are
// logged, never echoed to the client.
func ErrorRenderer(logger *slog.Logger) dispatch.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *dispatch.Ctx) dispatch.Signal {
		f := c.Failure()
		if f == nil {
			// Reached as a normal handler; nothing to render.
			return dispatch.Continue()
		}

		if f.Kind == dispatch.KindInternal {
			logger.Error("request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"message", f.Message,
				"error", f.Cause,
			)
		}

		msg := f.Message
		if msg == "" {
			msg = "request failed"
		}
		c.JSON(f.Status(), models.ErrorResponse{Message: msg, Kind: f.Kind})
		return dispatch.Complete()
	}
}

// NotFoundRoute is the tail catch-all registered after every route: anything
// that reaches it matched no route action, so it raises not found. Together
// with a final ErrorRenderer it guarantees no request falls off the end of
// the chain.
func NotFoundRoute() dispatch.Handler {
	return func(c *dispatch.Ctx) dispatch.Signal {
		return dispatch.Fail(dispatch.NotFound("not found"))
	}
}
