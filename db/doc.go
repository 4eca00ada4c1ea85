// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema.

Two dialects are supported, selected by the configured database type:
sqlite (the default, used for development and tests) and postgres. The
tables are identical apart from the auto-increment id columns.
*/
package db
