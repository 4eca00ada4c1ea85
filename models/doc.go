// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the entities and request/response types for the
resources API.

The demo surface manages two entities:

  - Resource: the top-level entity ({id, name})
  - Child: a sub-resource owned by one Resource

Error responses always carry at least a message field; see ErrorResponse.
*/
package models
