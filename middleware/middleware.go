// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jharlow/conveyor/auth"
	"github.com/jharlow/conveyor/dispatch"
)

// Ctx value keys set by the middleware in this package.
const (
	KeyRequestID = "request_id"
	KeyName      = "name"
	KeyResource  = "resource"
)

// RequestID propagates an inbound X-Request-ID header or mints a fresh UUID,
// storing it in the Ctx and echoing it on the response.
func RequestID() dispatch.Handler {
	return func(c *dispatch.Ctx) dispatch.Signal {
		id := c.Request.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(KeyRequestID, id)
		c.Header("X-Request-ID", id)
		return dispatch.Continue()
	}
}

// RequestLogger logs every inbound request. It runs early in the chain, so
// it sees the request-id and caller name attached by upstream handlers.
func RequestLogger(logger *slog.Logger) dispatch.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *dispatch.Ctx) dispatch.Signal {
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"remote", c.Request.RemoteAddr,
		}
		if id, ok := c.Get(KeyRequestID); ok {
			attrs = append(attrs, "request_id", id)
		}
		if name, ok := c.Get(KeyName); ok {
			attrs = append(attrs, "name", name)
		}
		logger.Info("request received", attrs...)
		return dispatch.Continue()
	}
}

// PoweredBy injects an X-Powered-By response header.
func PoweredBy(name string) dispatch.Handler {
	return func(c *dispatch.Ctx) dispatch.Signal {
		c.Header("X-Powered-By", name)
		return dispatch.Continue()
	}
}

// AttachName stores the caller-supplied ?caller= query parameter in the Ctx
// for downstream handlers (the logger picks it up). Distinct from ?name=,
// which the list route uses as an entity filter.
func AttachName() dispatch.Handler {
	return func(c *dispatch.Ctx) dispatch.Signal {
		if name := c.Request.URL.Query().Get("caller"); name != "" {
			c.Set(KeyName, name)
		}
		return dispatch.Continue()
	}
}

// Gate fails the request with deny unless allow approves it.
func Gate(allow func(c *dispatch.Ctx) bool, deny *dispatch.Failure) dispatch.Handler {
	return func(c *dispatch.Ctx) dispatch.Signal {
		if allow(c) {
			return dispatch.Continue()
		}
		return dispatch.Fail(deny)
	}
}

// AdminGate gates a route on the X-Admin-Token header matching the
// configured token.
func AdminGate(token string) dispatch.Handler {
	return Gate(func(c *dispatch.Ctx) bool {
		return auth.ValidateToken(c.Request.Header.Get("X-Admin-Token"), token) == nil
	}, dispatch.BadRequest("valid admin token required"))
}

// CORS allows cross-origin requests from browser frontends. It wraps the
// whole chain as a plain net/http middleware in main.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Token, X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
