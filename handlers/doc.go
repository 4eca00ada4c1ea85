// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the route actions for the resources API.

Actions are thin: they delegate to the store collaborator and translate its
outcomes into dispatch signals. Validation (entity lookup, body presence) has
already happened in middleware by the time an action runs, and error
formatting happens after it, in the terminal error handler. An action only
ever writes a success response or signals Fail with a classified failure.
*/
package handlers
