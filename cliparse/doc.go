// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with environment
variable fallback.

	conveyor -p 3000 -t sqlite
	PORT=3000 DATABASE_TYPE=postgres DATABASE_URL=postgres://... conveyor

Settings:

  - PORT (-p): listen port, default 3000
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string; defaults to a local sqlite file,
    required for postgres
  - ADMIN_TOKEN (-admin-token): optional; when set, DELETE routes require it
*/
package cliparse
