// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"

	"github.com/jharlow/conveyor/cliparse"
	"github.com/jharlow/conveyor/dispatch"
	"github.com/jharlow/conveyor/handlers"
	"github.com/jharlow/conveyor/middleware"
	"github.com/jharlow/conveyor/store"
)

// New assembles the handler chain for the resources API. The chain is built
// once here and never mutated afterwards; order matters throughout:
// cross-cutting middleware first, then routes, then the tail catch-all, and
// the error renderer last so every Fail raised above it can reach it.
func New(st store.Store, cfg cliparse.Config, logger *slog.Logger) *dispatch.Chain {
	if logger == nil {
		logger = slog.Default()
	}

	rh := handlers.NewResourceHandler(st)
	ch := dispatch.NewChain(logger)

	// Every request
	ch.Always(middleware.RequestID())
	ch.Always(middleware.AttachName())
	ch.Always(middleware.RequestLogger(logger))
	ch.Always(middleware.PoweredBy(cfg.ServiceName))

	// Resources
	ch.Handle("GET", "/resources", rh.List)
	ch.Handle("POST", "/resources", middleware.RequireBody(), rh.Create)
	ch.Handle("GET", "/resources/:id", middleware.ValidateResource("id", st), rh.Get)
	ch.Handle("PUT", "/resources/:id", middleware.ValidateResource("id", st), middleware.RequireBody(), rh.Update)
	if cfg.AdminToken != "" {
		ch.Handle("DELETE", "/resources/:id", middleware.AdminGate(cfg.AdminToken))
	}
	ch.Handle("DELETE", "/resources/:id", rh.Delete)

	// Children
	ch.Handle("GET", "/resources/:id/children", middleware.ValidateResource("id", st), rh.ListChildren)
	ch.Handle("POST", "/resources/:id/children", middleware.ValidateResource("id", st), middleware.RequireBody(), rh.CreateChild)

	// Anything still unanswered is an unknown route; the renderer below is
	// the only error handler and must stay last.
	ch.Always(middleware.NotFoundRoute())
	ch.HandleError(middleware.ErrorRenderer(logger))

	return ch
}
