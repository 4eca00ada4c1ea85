// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the conveyor API server.

Conveyor is an instructional HTTP service built around an ordered
middleware-dispatch model: every request walks a single registered handler
list, each handler explicitly signaling Continue, Fail, or Complete, with
failures routed forward (never backward) to error handlers. A small
/resources CRUD API gives the chain something real to dispatch to.

# Starting the Server

With defaults (local sqlite file, port 3000):

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

A .env file in the working directory is loaded when present.

# Configuration

  - PORT (-p): listen port, default 3000
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string, required for postgres
  - ADMIN_TOKEN (-admin-token): optional; gates DELETE routes when set

# Architecture

  - dispatch: the ordered middleware chain (signals, failures, the walk)
  - router: route registration; builds the chain once at startup
  - middleware: request-id, logging, gating, validation, error rendering
  - handlers: route actions for /resources and /resources/:id/children
  - store: data-access collaborator (sqlite or postgres)
  - db: schema creation
  - models: entities and request/response types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
