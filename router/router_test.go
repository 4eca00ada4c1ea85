// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jharlow/conveyor/dispatch"
	"github.com/jharlow/conveyor/models"
	"github.com/jharlow/conveyor/store"
	"github.com/jharlow/conveyor/testutil"
)

func newTestChain(t *testing.T) *dispatch.Chain {
	t.Helper()
	st := store.NewSQL(testutil.SetupTestDB(t))
	return New(st, testutil.GetTestConfig(), nil)
}

func do(t *testing.T, ch *dispatch.Chain, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	ch.ServeHTTP(w, req)
	return w
}

func TestGetResourceNotFound(t *testing.T) {
	ch := newTestChain(t)

	w := do(t, ch, testutil.MakeRequest("GET", "/resources/42", nil, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	var body models.ErrorResponse
	testutil.AssertJSON(t, w, &body)
	if body.Message != "invalid id" {
		t.Errorf("Expected message %q, got %q", "invalid id", body.Message)
	}
}

func TestCreateResourceEmptyBody(t *testing.T) {
	ch := newTestChain(t)

	w := do(t, ch, testutil.MakeRequest("POST", "/resources", map[string]any{}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var body models.ErrorResponse
	testutil.AssertJSON(t, w, &body)
	if body.Message != "body is required" {
		t.Errorf("Expected message %q, got %q", "body is required", body.Message)
	}

	// Nothing was stored.
	all := do(t, ch, testutil.MakeRequest("GET", "/resources", nil, nil))
	var rs []models.Resource
	testutil.AssertJSON(t, all, &rs)
	if len(rs) != 0 {
		t.Errorf("Expected no resources after rejected create, got %+v", rs)
	}
}

func TestCreateResource(t *testing.T) {
	ch := newTestChain(t)

	w := do(t, ch, testutil.MakeRequest("POST", "/resources", models.CreateResourceRequest{Name: "Acme"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.Resource
	testutil.AssertJSON(t, w, &created)
	if created.ID != 1 || created.Name != "Acme" {
		t.Errorf("Expected {id:1, name:Acme}, got %+v", created)
	}

	fetched := do(t, ch, testutil.MakeRequest("GET", "/resources/1", nil, nil))
	testutil.AssertStatus(t, fetched, http.StatusOK)
	var got models.Resource
	testutil.AssertJSON(t, fetched, &got)
	if got != created {
		t.Errorf("GET returned %+v, expected %+v", got, created)
	}
}

func TestListResourcesWithFilter(t *testing.T) {
	ch := newTestChain(t)

	for _, name := range []string{"Acme", "Globex", "Acme"} {
		w := do(t, ch, testutil.MakeRequest("POST", "/resources", models.CreateResourceRequest{Name: name}, nil))
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	w := do(t, ch, testutil.MakeRequest("GET", "/resources?name=Acme", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var rs []models.Resource
	testutil.AssertJSON(t, w, &rs)
	if len(rs) != 2 {
		t.Errorf("Expected 2 filtered resources, got %+v", rs)
	}
}

func TestUpdateResource(t *testing.T) {
	ch := newTestChain(t)

	do(t, ch, testutil.MakeRequest("POST", "/resources", models.CreateResourceRequest{Name: "Acme"}, nil))

	w := do(t, ch, testutil.MakeRequest("PUT", "/resources/1", models.UpdateResourceRequest{Name: "Acme Corp"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var updated models.Resource
	testutil.AssertJSON(t, w, &updated)
	if updated.Name != "Acme Corp" {
		t.Errorf("Expected renamed resource, got %+v", updated)
	}

	// Update of a missing id is a 404 before the body is even considered.
	missing := do(t, ch, testutil.MakeRequest("PUT", "/resources/99", models.UpdateResourceRequest{Name: "X"}, nil))
	testutil.AssertStatus(t, missing, http.StatusNotFound)

	// Valid id, empty body: the validation chain rejects it.
	empty := do(t, ch, testutil.MakeRequest("PUT", "/resources/1", map[string]any{}, nil))
	testutil.AssertStatus(t, empty, http.StatusBadRequest)
}

func TestDeleteResource(t *testing.T) {
	ch := newTestChain(t)

	do(t, ch, testutil.MakeRequest("POST", "/resources", models.CreateResourceRequest{Name: "Acme"}, nil))

	w := do(t, ch, testutil.MakeRequest("DELETE", "/resources/1", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.DeleteResourceResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Removed != 1 {
		t.Errorf("Expected 1 removed, got %d", resp.Removed)
	}

	again := do(t, ch, testutil.MakeRequest("DELETE", "/resources/1", nil, nil))
	testutil.AssertStatus(t, again, http.StatusNotFound)
}

func TestChildrenRoutes(t *testing.T) {
	ch := newTestChain(t)

	do(t, ch, testutil.MakeRequest("POST", "/resources", models.CreateResourceRequest{Name: "Acme"}, nil))

	created := do(t, ch, testutil.MakeRequest("POST", "/resources/1/children", models.CreateChildRequest{Name: "Widget"}, nil))
	testutil.AssertStatus(t, created, http.StatusCreated)
	var child models.Child
	testutil.AssertJSON(t, created, &child)
	if child.ResourceID != 1 || child.Name != "Widget" {
		t.Errorf("Unexpected child: %+v", child)
	}

	list := do(t, ch, testutil.MakeRequest("GET", "/resources/1/children", nil, nil))
	testutil.AssertStatus(t, list, http.StatusOK)
	var cs []models.Child
	testutil.AssertJSON(t, list, &cs)
	if len(cs) != 1 {
		t.Errorf("Expected 1 child, got %+v", cs)
	}

	// Parent validation guards both child routes.
	orphan := do(t, ch, testutil.MakeRequest("GET", "/resources/99/children", nil, nil))
	testutil.AssertStatus(t, orphan, http.StatusNotFound)

	orphanCreate := do(t, ch, testutil.MakeRequest("POST", "/resources/99/children", models.CreateChildRequest{Name: "X"}, nil))
	testutil.AssertStatus(t, orphanCreate, http.StatusNotFound)
}

func TestUnknownRouteGets404(t *testing.T) {
	ch := newTestChain(t)

	w := do(t, ch, testutil.MakeRequest("GET", "/nope", nil, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	var body models.ErrorResponse
	testutil.AssertJSON(t, w, &body)
	if body.Message != "not found" {
		t.Errorf("Expected message %q, got %q", "not found", body.Message)
	}
}

func TestInjectedHeaders(t *testing.T) {
	ch := newTestChain(t)

	w := do(t, ch, testutil.MakeRequest("GET", "/resources", nil, nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected an X-Request-ID header on every response")
	}
	if w.Header().Get("X-Powered-By") != "conveyor-test" {
		t.Errorf("Expected X-Powered-By from config, got %q", w.Header().Get("X-Powered-By"))
	}
}

func TestAdminTokenGatesDelete(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.NewSQL(conn)
	cfg := testutil.GetTestConfig()
	cfg.AdminToken = "topsecret"
	ch := New(st, cfg, nil)

	do(t, ch, testutil.MakeRequest("POST", "/resources", models.CreateResourceRequest{Name: "Acme"}, nil))

	denied := do(t, ch, testutil.MakeRequest("DELETE", "/resources/1", nil, nil))
	testutil.AssertStatus(t, denied, http.StatusBadRequest)

	// The resource must survive a denied delete.
	still := do(t, ch, testutil.MakeRequest("GET", "/resources/1", nil, nil))
	testutil.AssertStatus(t, still, http.StatusOK)

	allowed := do(t, ch, testutil.MakeRequest("DELETE", "/resources/1", nil, map[string]string{"X-Admin-Token": "topsecret"}))
	testutil.AssertStatus(t, allowed, http.StatusOK)
}
