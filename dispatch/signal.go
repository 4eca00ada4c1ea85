// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

type signalOp uint8

const (
	opComplete signalOp = iota
	opContinue
	opFail
)

// Signal is the value a handler returns to the dispatcher. A handler does
// exactly one of three things: produce the response (Complete), hand control
// to the next normal handler (Continue), or divert the walk to the next
// error handler (Fail). There is no implicit next() callback; the outcome is
// always an explicit return value.
type Signal struct {
	op      signalOp
	failure *Failure
}

// Continue hands control to the next matching normal handler.
func Continue() Signal {
	return Signal{op: opContinue}
}

// Complete tells the dispatcher the response has been produced and the walk
// is over. A handler that has written to the response should return this.
func Complete() Signal {
	return Signal{op: opComplete}
}

// Fail diverts the walk to the next matching error handler, carrying f for
// the error handler to render. A nil f is treated as an unclassified
// bad request.
func Fail(f *Failure) Signal {
	if f == nil {
		f = BadRequest("request failed")
	}
	return Signal{op: opFail, failure: f}
}
