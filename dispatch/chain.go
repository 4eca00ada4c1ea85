// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"errors"
	"log/slog"
	"net/http"
)

// Handler is a unit of request-processing logic. It receives the per-request
// Ctx and returns exactly one Signal. The typed signature is deliberate:
// argument-order mistakes that plague untyped (req, res, next) callbacks are
// compile errors here.
type Handler func(c *Ctx) Signal

type handlerKind uint8

const (
	kindNormal handlerKind = iota
	kindError
)

// entry is one registered handler with its predicate. Entries are immutable
// once registered; their order in the chain is registration order.
type entry struct {
	method  string // "" matches any method
	pattern string // "" matches any path
	kind    handlerKind
	handle  Handler
}

func (e *entry) match(method, path string) (map[string]string, bool) {
	if e.method != "" && e.method != method {
		return nil, false
	}
	if e.pattern == "" {
		return nil, true
	}
	return matchRoute(e.pattern, path)
}

// Dispatch outcomes for chains that terminate without a response. Both are
// caller contract violations: a well-assembled chain ends with a catch-all
// and an error handler, so neither condition is reachable.
var (
	// ErrNoResponse means the walk exhausted the list in normal mode: no
	// handler wrote a response or signaled Fail.
	ErrNoResponse = errors.New("dispatch: handler list exhausted without a response")

	// ErrUnhandledFailure means a Fail signal found no error handler in the
	// remainder of the list.
	ErrUnhandledFailure = errors.New("dispatch: failure reached end of chain with no error handler")
)

// Chain is the ordered handler list. It is assembled once at startup via
// Always, Handle and HandleError, then served; registration must not be
// interleaved with serving. The list itself is shared by all requests while
// each request gets its own Ctx and walk state.
type Chain struct {
	entries []entry
	log     *slog.Logger
}

// NewChain returns an empty chain that logs dispatch faults to logger.
// A nil logger falls back to slog.Default.
func NewChain(logger *slog.Logger) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{log: logger}
}

// Always registers handlers that run for every request, in order.
func (ch *Chain) Always(hs ...Handler) {
	for _, h := range hs {
		ch.entries = append(ch.entries, entry{handle: h})
	}
}

// Handle registers handlers for one method and path pattern. Supplying
// several handlers appends that many consecutive entries sharing the same
// predicate; each one individually follows the Continue/Fail/Complete
// protocol.
func (ch *Chain) Handle(method, pattern string, hs ...Handler) {
	for _, h := range hs {
		ch.entries = append(ch.entries, entry{method: method, pattern: pattern, handle: h})
	}
}

// HandleError registers error handlers. They are skipped during the normal
// walk and become eligible only after a handler registered before them
// signals Fail; a Fail signaled after them in the list can never reach back.
func (ch *Chain) HandleError(hs ...Handler) {
	for _, h := range hs {
		ch.entries = append(ch.entries, entry{kind: kindError, handle: h})
	}
}

// Len reports the number of registered entries.
func (ch *Chain) Len() int {
	return len(ch.entries)
}

// Dispatch walks the chain for one request and reports how the walk ended.
// The walk holds a cursor and a seeking flag, both request-local:
//
//   - normal mode: the cursor scans forward for the next matching normal
//     entry; error entries are skipped.
//   - after a Fail: the failure is stashed on the Ctx and only error entries
//     strictly after the failing entry are considered. The scan never wraps
//     and never revisits an earlier entry, whatever its kind.
//
// A written response or a Complete signal ends the walk with a nil error.
// Exhaustion writes a generic 500 (no request is left hanging) and returns
// ErrNoResponse or ErrUnhandledFailure.
func (ch *Chain) Dispatch(w http.ResponseWriter, r *http.Request) error {
	c := newCtx(w, r)
	seeking := false

	for i := range ch.entries {
		e := &ch.entries[i]
		if (e.kind == kindError) != seeking {
			continue
		}
		params, ok := e.match(r.Method, r.URL.Path)
		if !ok {
			continue
		}
		c.setParams(params)

		sig := e.handle(c)
		if c.resp.Written() || sig.op == opComplete {
			return nil
		}
		if sig.op == opFail {
			seeking = true
			c.failure = sig.failure
		}
	}

	if seeking {
		ch.log.Error("no error handler matched after failure",
			"method", r.Method,
			"path", r.URL.Path,
			"kind", c.failure.Kind,
			"error", c.failure,
		)
		ch.writeFallback(c)
		return ErrUnhandledFailure
	}

	ch.log.Error("handler list exhausted without a response",
		"method", r.Method,
		"path", r.URL.Path,
	)
	ch.writeFallback(c)
	return ErrNoResponse
}

// ServeHTTP makes the chain mountable on a net/http server. Dispatch faults
// are already logged and answered with the generic fallback.
func (ch *Chain) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = ch.Dispatch(w, r)
}

func (ch *Chain) writeFallback(c *Ctx) {
	if err := c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"}); err != nil {
		ch.log.Error("failed to write fallback response", "error", err)
	}
}
