// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrNoBody is returned by BindBody and BodyObject when the request carried
// no body at all.
var ErrNoBody = errors.New("dispatch: request has no body")

// responseSink wraps the underlying ResponseWriter and records whether a
// response has been started. The dispatcher uses this to detect that a
// handler produced the response directly.
type responseSink struct {
	http.ResponseWriter
	wrote  bool
	status int
}

func (s *responseSink) WriteHeader(code int) {
	if s.wrote {
		return
	}
	s.wrote = true
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *responseSink) Write(b []byte) (int, error) {
	if !s.wrote {
		s.wrote = true
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

func (s *responseSink) Written() bool { return s.wrote }
func (s *responseSink) Status() int   { return s.status }

// Ctx is the per-request context threaded through the handler chain. It is
// created when dispatch begins, owned exclusively by that request, and
// discarded when the request completes. Mutations made by upstream handlers
// (attached values, extracted path params) are visible downstream.
type Ctx struct {
	Request *http.Request

	resp    *responseSink
	params  map[string]string
	values  map[string]any
	failure *Failure

	bodyRead  bool
	bodyBytes []byte
	bodyObj   map[string]any
	objParsed bool
}

func newCtx(w http.ResponseWriter, r *http.Request) *Ctx {
	return &Ctx{
		Request: r,
		resp:    &responseSink{ResponseWriter: w},
		params:  make(map[string]string),
		values:  make(map[string]any),
	}
}

// Writer exposes the response writer for handlers that need direct access,
// e.g. to set headers before the body is written.
func (c *Ctx) Writer() http.ResponseWriter {
	return c.resp
}

// Header sets a response header.
func (c *Ctx) Header(key, value string) {
	c.resp.Header().Set(key, value)
}

// Param returns the value of a named path parameter (e.g. "id" for a route
// registered with pattern "/resources/:id"), or "" if absent.
func (c *Ctx) Param(name string) string {
	return c.params[name]
}

// Set attaches a value to the request for downstream handlers.
func (c *Ctx) Set(key string, v any) {
	c.values[key] = v
}

// Get returns a value attached by an upstream handler.
func (c *Ctx) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Failure returns the failure stashed by the most recent Fail signal. It is
// non-nil only while the dispatcher is seeking an error handler, so error
// handlers can rely on it being set.
func (c *Ctx) Failure() *Failure {
	return c.failure
}

// Body returns the raw request body, reading and caching it on first call so
// that several handlers in the chain can each inspect it.
func (c *Ctx) Body() ([]byte, error) {
	if c.bodyRead {
		return c.bodyBytes, nil
	}
	c.bodyRead = true
	if c.Request.Body == nil {
		return nil, nil
	}
	defer c.Request.Body.Close()
	b, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	c.bodyBytes = b
	return b, nil
}

// BodyObject decodes the body as a generic JSON object, cached across calls.
func (c *Ctx) BodyObject() (map[string]any, error) {
	if c.objParsed {
		return c.bodyObj, nil
	}
	b, err := c.Body()
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, ErrNoBody
	}
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	c.objParsed = true
	c.bodyObj = obj
	return obj, nil
}

// BindBody unmarshals the cached body into v.
func (c *Ctx) BindBody(v any) error {
	b, err := c.Body()
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return ErrNoBody
	}
	return json.Unmarshal(b, v)
}

// JSON writes a JSON response with the given status code.
func (c *Ctx) JSON(status int, v any) error {
	c.resp.Header().Set("Content-Type", "application/json")
	c.resp.WriteHeader(status)
	return json.NewEncoder(c.resp).Encode(v)
}

// setParams merges freshly extracted path parameters into the context.
// Merging rather than replacing keeps params visible to later entries whose
// own pattern extracts nothing (e.g. catch-all entries).
func (c *Ctx) setParams(params map[string]string) {
	for k, v := range params {
		c.params[k] = v
	}
}
