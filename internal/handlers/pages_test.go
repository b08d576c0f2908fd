// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"sitecms/internal/models"
	"sitecms/internal/storage"
	"sitecms/internal/store"
)

func TestCreatePageThenConflict(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	body := `{"title":"Test Page","slug":"/test-page","status":"draft"}`

	rr := env.do(t, http.MethodPost, "/api/website/pages", body)
	expectStatus(t, rr, http.StatusCreated)
	resp := decodeEnvelope(t, rr)
	if !resp.Success || resp.Message != "Page created successfully" {
		t.Errorf("envelope: %+v", resp)
	}
	var p models.Page
	decodeData(t, resp, &p)
	if p.Slug != "/test-page" || p.Status != models.PageStatusDraft || p.Views != 0 || len(p.Sections) != 0 {
		t.Errorf("created page: %+v", p)
	}
	if p.ID == "" || p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Errorf("server fields not assigned: %+v", p)
	}

	rr = env.do(t, http.MethodPost, "/api/website/pages", body)
	expectStatus(t, rr, http.StatusConflict)
	if msg := decodeEnvelope(t, rr).Message; msg != "A page with this slug already exists" {
		t.Errorf("conflict message: %q", msg)
	}

	// The new page is reachable by id.
	rr = env.do(t, http.MethodGet, "/api/website/pages/"+p.ID, "")
	expectStatus(t, rr, http.StatusOK)
}

func TestCreatePageBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"title":`, "Invalid JSON in request body"},
		{"empty body", ``, "Invalid JSON in request body"},
		{"missing title", `{"slug":"/x"}`, "Title and slug are required"},
		{"missing slug", `{"title":"X"}`, "Title and slug are required"},
		{"bad slug", `{"title":"X","slug":"Not A Slug"}`, "Slug must contain only lowercase letters, numbers, and hyphens"},
		{"bad status", `{"title":"X","slug":"/x","status":"archived"}`, `Invalid status "archived"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testConfig(), nil)
			rr := env.do(t, http.MethodPost, "/api/website/pages", tt.body)
			expectStatus(t, rr, http.StatusBadRequest)
			resp := decodeEnvelope(t, rr)
			if resp.Success || !strings.Contains(resp.Message, tt.want) {
				t.Errorf("message: got %q, want it to contain %q", resp.Message, tt.want)
			}
		})
	}
}

func TestListPages(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	rr := env.do(t, http.MethodGet, "/api/website/pages?limit=2&page=2", "")
	expectStatus(t, rr, http.StatusOK)
	resp := decodeEnvelope(t, rr)
	var pages []models.Page
	decodeData(t, resp, &pages)
	if len(pages) != 2 {
		t.Errorf("got %d pages, want 2", len(pages))
	}
	if resp.Pagination == nil || *resp.Pagination != (models.Pagination{Page: 2, Limit: 2, Total: 9, TotalPages: 5}) {
		t.Errorf("pagination: %+v", resp.Pagination)
	}

	rr = env.do(t, http.MethodGet, "/api/website/pages?status=draft", "")
	expectStatus(t, rr, http.StatusOK)
	decodeData(t, decodeEnvelope(t, rr), &pages)
	if len(pages) != 1 || pages[0].ID != "contact" {
		t.Errorf("draft filter: %+v", pages)
	}

	rr = env.do(t, http.MethodGet, "/api/website/pages?search=nothing-matches-this", "")
	expectStatus(t, rr, http.StatusOK)
	if data := string(decodeEnvelope(t, rr).Data); data != "[]" {
		t.Errorf("empty result data: got %s, want []", data)
	}
}

func TestListPagesInvalidPagination(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	for _, q := range []string{"page=0", "limit=0", "limit=101", "page=abc", "limit=1.5"} {
		t.Run(q, func(t *testing.T) {
			rr := env.do(t, http.MethodGet, "/api/website/pages?"+q, "")
			expectStatus(t, rr, http.StatusBadRequest)
			if msg := decodeEnvelope(t, rr).Message; msg != "Invalid pagination parameters" {
				t.Errorf("message: %q", msg)
			}
		})
	}
}

func TestGetPage(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	rr := env.do(t, http.MethodGet, "/api/website/pages/about", "")
	expectStatus(t, rr, http.StatusOK)
	var p models.Page
	decodeData(t, decodeEnvelope(t, rr), &p)
	if p.Slug != "/about" {
		t.Errorf("slug: %q", p.Slug)
	}

	rr = env.do(t, http.MethodGet, "/api/website/pages/missing", "")
	expectStatus(t, rr, http.StatusNotFound)
	if msg := decodeEnvelope(t, rr).Message; msg != "Page not found" {
		t.Errorf("message: %q", msg)
	}
}

func TestUpdatePage(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	body := `{"title":"About 1Tech","slug":"/about-us","sections":[
		{"id":"s1","name":"Intro","type":"content","enabled":true,"order":1,"data":{"title":"Hi","content":"**bold**"}},
		{"id":"s2","name":"Odd","type":"carousel","enabled":true,"order":2,"data":{"slides":3}}
	]}`
	rr := env.do(t, http.MethodPut, "/api/website/pages/about", body)
	expectStatus(t, rr, http.StatusOK)
	resp := decodeEnvelope(t, rr)
	if resp.Message != "Page updated successfully" {
		t.Errorf("message: %q", resp.Message)
	}
	var p models.Page
	decodeData(t, resp, &p)
	if p.Title != "About 1Tech" || p.Slug != "/about-us" || len(p.Sections) != 2 {
		t.Fatalf("updated page: %+v", p)
	}
	if p.MetaTitle == "" {
		t.Error("fields absent from the patch must survive")
	}
	if p.Sections[1].Type != "carousel" {
		t.Errorf("unknown section type not preserved: %q", p.Sections[1].Type)
	}

	rr = env.do(t, http.MethodPut, "/api/website/pages/about", `{"slug":"/contact"}`)
	expectStatus(t, rr, http.StatusConflict)

	rr = env.do(t, http.MethodPut, "/api/website/pages/about", `{"slug":"Bad Slug"}`)
	expectStatus(t, rr, http.StatusBadRequest)

	rr = env.do(t, http.MethodPut, "/api/website/pages/about", `{"sections":[{"id":"a"},{"id":"a"}]}`)
	expectStatus(t, rr, http.StatusBadRequest)

	rr = env.do(t, http.MethodPut, "/api/website/pages/nope", `{"title":"X"}`)
	expectStatus(t, rr, http.StatusNotFound)

	// Updates address pages by id; a slug that is not also an id is unknown.
	rr = env.do(t, http.MethodPost, "/api/website/pages", `{"title":"T","slug":"plain-slug"}`)
	expectStatus(t, rr, http.StatusCreated)
	var created models.Page
	decodeData(t, decodeEnvelope(t, rr), &created)
	if created.Slug != "/plain-slug" {
		t.Errorf("stored slug: %q", created.Slug)
	}
	rr = env.do(t, http.MethodPut, "/api/website/pages/plain-slug", `{"title":"Renamed"}`)
	expectStatus(t, rr, http.StatusNotFound)
	rr = env.do(t, http.MethodGet, "/api/website/pages/"+created.ID, "")
	var after models.Page
	decodeData(t, decodeEnvelope(t, rr), &after)
	if after.Title != "T" {
		t.Errorf("page changed by slug update: %q", after.Title)
	}

	rr = env.do(t, http.MethodPut, "/api/website/pages/about", `not json`)
	expectStatus(t, rr, http.StatusBadRequest)
}

func TestDeletePage(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	rr := env.do(t, http.MethodDelete, "/api/website/pages/landing", "")
	expectStatus(t, rr, http.StatusBadRequest)
	if msg := decodeEnvelope(t, rr).Message; !strings.Contains(msg, "landing page") {
		t.Errorf("message should mention the landing page: %q", msg)
	}

	rr = env.do(t, http.MethodDelete, "/api/website/pages/terms-conditions", "")
	expectStatus(t, rr, http.StatusOK)
	var p models.Page
	decodeData(t, decodeEnvelope(t, rr), &p)
	if p.ID != "terms-conditions" {
		t.Errorf("deleted page: %+v", p)
	}

	rr = env.do(t, http.MethodDelete, "/api/website/pages/terms-conditions", "")
	expectStatus(t, rr, http.StatusNotFound)
}

// brokenStore fails every page listing with an infrastructure error.
type brokenStore struct {
	store.Store
}

func (brokenStore) ListPages(context.Context, models.PageFilter) ([]models.Page, models.Pagination, error) {
	return nil, models.Pagination{}, errors.New("connection refused")
}

func TestUnexpectedErrorIsGeneric(t *testing.T) {
	api := NewAPI(testConfig(), brokenStore{}, storage.NewMock(), nil, zap.NewNop())
	rr := httptest.NewRecorder()
	api.ListPages(rr, httptest.NewRequest(http.MethodGet, "/api/website/pages", nil))

	expectStatus(t, rr, http.StatusInternalServerError)
	msg := decodeEnvelope(t, rr).Message
	if msg != "Failed to fetch pages" {
		t.Errorf("message: %q", msg)
	}
}

func TestStatusFor(t *testing.T) {
	tests := map[store.Kind]int{
		store.KindNotFound:   http.StatusNotFound,
		store.KindConflict:   http.StatusConflict,
		store.KindBadRequest: http.StatusBadRequest,
		store.KindForbidden:  http.StatusBadRequest,
		store.KindUnknown:    http.StatusInternalServerError,
	}
	for kind, want := range tests {
		if got := statusFor(kind); got != want {
			t.Errorf("%v: got %d, want %d", kind, got, want)
		}
	}
}
