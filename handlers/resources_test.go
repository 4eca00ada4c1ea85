// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jharlow/conveyor/dispatch"
	"github.com/jharlow/conveyor/middleware"
	"github.com/jharlow/conveyor/models"
	"github.com/jharlow/conveyor/store"
	"github.com/jharlow/conveyor/testutil"
)

var errIO = errors.New("simulated I/O failure")

// scriptedStore fails every operation err is set for; otherwise it delegates
// to fixed canned data. It keeps handler tests free of SQL.
type scriptedStore struct {
	err       error
	resources []models.Resource
	children  []models.Child
	added     int
}

func (s *scriptedStore) Find(f store.Filter) ([]models.Resource, error) {
	if s.err != nil {
		return nil, s.err
	}
	if f.Name == "" {
		return s.resources, nil
	}
	out := []models.Resource{}
	for _, r := range s.resources {
		if r.Name == f.Name {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *scriptedStore) FindByID(id int64) (models.Resource, error) {
	if s.err != nil {
		return models.Resource{}, s.err
	}
	for _, r := range s.resources {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Resource{}, store.ErrNotFound
}

func (s *scriptedStore) Add(req models.CreateResourceRequest) (models.Resource, error) {
	if s.err != nil {
		return models.Resource{}, s.err
	}
	s.added++
	r := models.Resource{ID: int64(len(s.resources) + 1), Name: req.Name}
	s.resources = append(s.resources, r)
	return r, nil
}

func (s *scriptedStore) Update(id int64, req models.UpdateResourceRequest) (models.Resource, error) {
	if s.err != nil {
		return models.Resource{}, s.err
	}
	for i, r := range s.resources {
		if r.ID == id {
			s.resources[i].Name = req.Name
			return s.resources[i], nil
		}
	}
	return models.Resource{}, store.ErrNotFound
}

func (s *scriptedStore) Remove(id int64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	for i, r := range s.resources {
		if r.ID == id {
			s.resources = append(s.resources[:i], s.resources[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *scriptedStore) FindChildren(parentID int64) ([]models.Child, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []models.Child{}
	for _, c := range s.children {
		if c.ResourceID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *scriptedStore) AddChild(parentID int64, req models.CreateChildRequest) (models.Child, error) {
	if s.err != nil {
		return models.Child{}, s.err
	}
	c := models.Child{ID: int64(len(s.children) + 1), ResourceID: parentID, Name: req.Name}
	s.children = append(s.children, c)
	return c, nil
}

// chainFor wires one route the way the router does, with the terminal error
// renderer in place.
func chainFor(method, pattern string, hs ...dispatch.Handler) *dispatch.Chain {
	ch := dispatch.NewChain(nil)
	ch.Handle(method, pattern, hs...)
	ch.Always(middleware.NotFoundRoute())
	ch.HandleError(middleware.ErrorRenderer(nil))
	return ch
}

func dispatchTo(t *testing.T, ch *dispatch.Chain, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	ch.ServeHTTP(w, req)
	return w
}

func TestListFailsAsInternal(t *testing.T) {
	st := &scriptedStore{err: errIO}
	h := NewResourceHandler(st)
	ch := chainFor("GET", "/resources", h.List)

	w := dispatchTo(t, ch, testutil.MakeRequest("GET", "/resources", nil, nil))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var body models.ErrorResponse
	testutil.AssertJSON(t, w, &body)
	if body.Kind != dispatch.KindInternal {
		t.Errorf("Expected internal kind, got %q", body.Kind)
	}
}

func TestCreateValidatesName(t *testing.T) {
	st := &scriptedStore{}
	h := NewResourceHandler(st)
	ch := chainFor("POST", "/resources", middleware.RequireBody(), h.Create)

	w := dispatchTo(t, ch, testutil.MakeRequest("POST", "/resources", map[string]any{"label": "x"}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var body models.ErrorResponse
	testutil.AssertJSON(t, w, &body)
	if body.Message != "name is required" {
		t.Errorf("Expected message %q, got %q", "name is required", body.Message)
	}
	if st.added != 0 {
		t.Error("Add must not be invoked for an invalid body")
	}
}

func TestCreateEmptyBodyNeverReachesStore(t *testing.T) {
	st := &scriptedStore{}
	h := NewResourceHandler(st)
	ch := chainFor("POST", "/resources", middleware.RequireBody(), h.Create)

	w := dispatchTo(t, ch, testutil.MakeRequest("POST", "/resources", map[string]any{}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
	if st.added != 0 {
		t.Error("Add must not be invoked when the body is empty")
	}
}

func TestCreateReturnsStoredEntity(t *testing.T) {
	st := &scriptedStore{}
	h := NewResourceHandler(st)
	ch := chainFor("POST", "/resources", middleware.RequireBody(), h.Create)

	w := dispatchTo(t, ch, testutil.MakeRequest("POST", "/resources", models.CreateResourceRequest{Name: "Acme"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.Resource
	testutil.AssertJSON(t, w, &created)
	if created != (models.Resource{ID: 1, Name: "Acme"}) {
		t.Errorf("Expected stored entity back, got %+v", created)
	}
}

func TestGetRequiresValidationUpstream(t *testing.T) {
	// Wiring Get without ValidateResource is a router bug; the action turns
	// it into an internal failure rather than panicking.
	st := &scriptedStore{resources: []models.Resource{{ID: 1, Name: "Acme"}}}
	h := NewResourceHandler(st)
	ch := chainFor("GET", "/resources/:id", h.Get)

	w := dispatchTo(t, ch, testutil.MakeRequest("GET", "/resources/1", nil, nil))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestDeleteOutcomes(t *testing.T) {
	testCases := []struct {
		name   string
		path   string
		st     *scriptedStore
		status int
	}{
		{"Existing", "/resources/1", &scriptedStore{resources: []models.Resource{{ID: 1, Name: "Acme"}}}, http.StatusOK},
		{"Absent", "/resources/9", &scriptedStore{}, http.StatusNotFound},
		{"NonNumericID", "/resources/nope", &scriptedStore{}, http.StatusNotFound},
		{"StoreFailure", "/resources/1", &scriptedStore{err: errIO}, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewResourceHandler(tc.st)
			ch := chainFor("DELETE", "/resources/:id", h.Delete)
			w := dispatchTo(t, ch, testutil.MakeRequest("DELETE", tc.path, nil, nil))
			testutil.AssertStatus(t, w, tc.status)
		})
	}
}

func TestCreateChildFailsAsInternal(t *testing.T) {
	st := &scriptedStore{resources: []models.Resource{{ID: 1, Name: "Acme"}}}
	h := NewResourceHandler(st)
	ch := chainFor("POST", "/resources/:id/children",
		middleware.ValidateResource("id", st), middleware.RequireBody(), h.CreateChild)

	okReq := testutil.MakeRequest("POST", "/resources/1/children", models.CreateChildRequest{Name: "Widget"}, nil)
	w := dispatchTo(t, ch, okReq)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// With the collaborator failing, the chain renders 500 instead of
	// leaking the raw error.
	st.err = errIO
	failReq := testutil.MakeRequest("POST", "/resources/1/children", models.CreateChildRequest{Name: "Gadget"}, nil)
	w = dispatchTo(t, ch, failReq)
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
