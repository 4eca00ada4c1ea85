// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"fmt"
	"net/http"
)

// Failure kinds. Every failing handler classifies its failure as one of
// these; the terminal error handler maps the kind to an HTTP status.
const (
	KindNotFound   = "not_found"
	KindBadRequest = "bad_request"
	KindInternal   = "internal"
)

// Failure is the payload carried by a Fail signal: a closed classification,
// a user-facing message, and an optional underlying cause.
type Failure struct {
	Kind    string
	Message string
	Cause   error
}

// NotFound builds a Failure for a requested entity that does not exist.
func NotFound(message string) *Failure {
	return &Failure{Kind: KindNotFound, Message: message}
}

// BadRequest builds a Failure for missing or malformed required input.
func BadRequest(message string) *Failure {
	return &Failure{Kind: KindBadRequest, Message: message}
}

// Internal builds a Failure for a collaborator or I/O error. The cause is
// kept for logging; it is never rendered to the client.
func Internal(message string, cause error) *Failure {
	return &Failure{Kind: KindInternal, Message: message, Cause: cause}
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Cause)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// Status returns the HTTP status implied by the failure kind.
// Unclassified kinds default to 400.
func (f *Failure) Status() int {
	switch f.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
