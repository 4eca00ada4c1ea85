// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dispatch implements an ordered middleware chain for HTTP requests.

A Chain holds handlers in registration order, each guarded by an optional
method+path predicate. For every request the chain is walked front to back;
each invoked handler returns a Signal saying what happens next:

	dispatch.Continue()   // run the next matching normal handler
	dispatch.Fail(f)      // divert to the next error handler, carrying f
	dispatch.Complete()   // response produced, stop

# Assembling a chain

	ch := dispatch.NewChain(logger)
	ch.Always(logHandler)                         // every request
	ch.Handle("GET", "/resources/:id", validate, show)
	ch.HandleError(renderError)                   // error handlers go last

Registering several handlers in one Handle call appends that many entries
sharing one predicate; each still signals for itself.

# Failure routing

A Fail signal switches the walk into error-seeking mode: from that point only
entries registered with HandleError are eligible, and only those positioned
after the failing handler. The scan is strictly forward — an error handler
registered near the front of the list is unreachable for failures raised
behind it. Failures are classified with the closed Failure taxonomy
(not found, bad request, internal), which the terminal error handler maps to
an HTTP status.

# Request context

Handlers communicate through the per-request Ctx: extracted path parameters,
a key/value bag for attached values (e.g. a validated entity), the cached
request body, and the stashed Failure while seeking. Walk state is never
shared between requests; concurrent requests walk the same immutable entry
list independently.
*/
package dispatch
