// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sitecms/internal/middleware"
	"sitecms/internal/models"
	"sitecms/internal/respond"
	"sitecms/internal/store"
)

// ListPages returns one window of pages filtered by status and search.
func (a *API) ListPages(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pageParams(r, store.DefaultPageLimit)
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}
	q := r.URL.Query()
	pages, pg, err := a.store.ListPages(r.Context(), models.PageFilter{
		Status: models.PageStatus(q.Get("status")),
		Search: strings.TrimSpace(q.Get("search")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		a.fail(w, r, err, "fetch pages")
		return
	}
	respond.List(w, pages, pg)
}

// GetPage returns a page by id or slug.
func (a *API) GetPage(w http.ResponseWriter, r *http.Request) {
	p, err := a.store.GetPage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err, "fetch page")
		return
	}
	respond.OK(w, http.StatusOK, p, "")
}

// CreatePage stores a new page with empty sections.
func (a *API) CreatePage(w http.ResponseWriter, r *http.Request) {
	var in models.NewPage
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateNewPage(in); msg != "" {
		respond.Error(w, http.StatusBadRequest, msg)
		return
	}

	if claims := middleware.ClaimsFromCtx(r.Context()); claims != nil && claims.Subject != "" {
		in.Author = claims.Subject
	}
	p, err := a.store.CreatePage(r.Context(), in)
	if err != nil {
		a.fail(w, r, err, "create page")
		return
	}
	a.log.Info("page created", zap.String("id", p.ID), zap.String("slug", p.Slug))
	respond.OK(w, http.StatusCreated, p, "Page created successfully")
}

// UpdatePage merges a partial page into the stored one. A provided sections
// list replaces the old one wholesale.
func (a *API) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch models.PagePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	p, prevSlug, err := a.store.UpdatePage(r.Context(), id, patch)
	if err != nil {
		a.fail(w, r, err, "update page")
		return
	}
	a.invalidate(r, prevSlug, p.Slug)
	respond.OK(w, http.StatusOK, p, "Page updated successfully")
}

// DeletePage removes a page. The landing page cannot be deleted.
func (a *API) DeletePage(w http.ResponseWriter, r *http.Request) {
	p, err := a.store.DeletePage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err, "delete page")
		return
	}
	a.invalidate(r, p.Slug)
	respond.OK(w, http.StatusOK, p, "Page deleted successfully")
}

func (a *API) invalidate(r *http.Request, slugs ...string) {
	if a.pages != nil {
		a.pages.Invalidate(r.Context(), slugs...)
	}
}
