// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sitecms/internal/cache"
	"sitecms/internal/config"
	"sitecms/internal/render"
	"sitecms/internal/slug"
	"sitecms/internal/store"
)

// Public serves published pages as HTML.
type Public struct {
	cfg       *config.Config
	store     store.Store
	renderer  *render.Renderer
	pageCache *cache.PageCache // nil when caching is off
	log       *zap.Logger
}

// NewPublic creates the public handler group. pageCache may be nil.
func NewPublic(cfg *config.Config, st store.Store, renderer *render.Renderer, pageCache *cache.PageCache, log *zap.Logger) *Public {
	return &Public{cfg: cfg, store: st, renderer: renderer, pageCache: pageCache, log: log}
}

// Landing renders the page with slug "/".
func (p *Public) Landing(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, slug.Root)
}

// Page renders the page whose slug is "/" followed by the path segment.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, slug.FromPath(chi.URLParam(r, "slug")))
}

// serve looks the page up on every request so unpublished pages stop
// rendering at once and views are counted for cached responses too. Only the
// rendered HTML comes from the cache.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, pageSlug string) {
	if !p.cfg.Enabled {
		http.Error(w, config.UnavailableMessage("disabled"), http.StatusServiceUnavailable)
		return
	}
	ctx := r.Context()

	page, err := p.store.GetPage(ctx, pageSlug)
	if err != nil || !page.IsPublished() || page.Slug != pageSlug {
		if err != nil && store.KindOf(err) != store.KindNotFound {
			p.log.Error("find page failed", zap.String("slug", pageSlug), zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		http.NotFound(w, r)
		return
	}

	if err := p.store.IncrementViews(ctx, page.ID); err != nil {
		p.log.Warn("increment views failed", zap.String("id", page.ID), zap.Error(err))
	}

	useCache := p.pageCache != nil && p.cfg.UseCache()
	if useCache {
		if cached, ok := p.pageCache.Get(ctx, pageSlug); ok {
			writeHTML(w, cached)
			return
		}
	}

	settings, err := p.store.GetSettings(ctx)
	if err != nil {
		p.log.Error("load settings failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := p.renderer.Page(&buf, page, settings); err != nil {
		p.log.Error("render page failed", zap.String("slug", pageSlug), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if useCache {
		p.pageCache.Set(ctx, pageSlug, buf.Bytes())
	}
	writeHTML(w, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}
