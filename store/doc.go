// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data-access layer behind the resource handlers.

Handlers depend on the Store interface, not on SQL, so middleware and handler
tests can substitute a stub that fails on demand. The SQL implementation runs
unchanged on sqlite (modernc.org/sqlite) and PostgreSQL (lib/pq).

Absence is reported with ErrNotFound:

	r, err := st.FindByID(42)
	if errors.Is(err, store.ErrNotFound) {
		// 404 territory
	}
*/
package store
