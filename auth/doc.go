// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth holds the admin-token helpers behind the delete gate.

A single static token (ADMIN_TOKEN) guards destructive routes when
configured; comparison is constant time. When no token is configured the
gate is simply not installed.
*/
package auth
