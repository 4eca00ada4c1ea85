// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides the dispatch handlers shared by every route.

# Chain middleware

	middleware.RequestID()        // X-Request-ID injection (uuid)
	middleware.RequestLogger(log) // slog request line
	middleware.PoweredBy("conveyor")
	middleware.AttachName()       // ?caller= into the request context
	middleware.AdminGate(token)   // ad-hoc gating of destructive routes

# Validation

	middleware.ValidateResource("id", store) // attach entity or fail not-found
	middleware.RequireBody()                 // non-empty JSON object or 400

Validation middleware enriches the request context and signals Continue;
route actions behind it can assume the resource/body is present.

# Error rendering

ErrorRenderer is the terminal error handler and the only place error JSON is
produced; NotFoundRoute is the tail catch-all that turns unmatched requests
into a not-found failure. Register both last:

	ch.Always(middleware.NotFoundRoute())
	ch.HandleError(middleware.ErrorRenderer(log))

# Outer HTTP middleware

CORS is a plain net/http wrapper applied around the whole chain in main.
*/
package middleware
