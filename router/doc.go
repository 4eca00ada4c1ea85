// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router assembles the dispatch chain for the resources API.

Route overview:

	GET    /resources                 list (optional ?name= filter)
	POST   /resources                 create (201)
	GET    /resources/:id             fetch one
	PUT    /resources/:id             update
	DELETE /resources/:id             delete (admin token when configured)
	GET    /resources/:id/children    list children
	POST   /resources/:id/children    create child (201)

Registration order is the contract: the tail catch-all and the terminal
error renderer are registered last, so every failure raised by the entries
above them finds its error handler by scanning forward.
*/
package router
