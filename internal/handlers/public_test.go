// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"sitecms/internal/cache"
)

func newPageCache(t *testing.T) (*cache.PageCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewPageCache(client, time.Hour, zap.NewNop()), mr
}

func TestPublicLanding(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	rr := env.do(t, http.MethodGet, "/", "")
	expectStatus(t, rr, http.StatusOK)
	if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content type: %q", ct)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") || !strings.Contains(body, "1Tech Academy") {
		t.Errorf("landing page not rendered:\n%s", body)
	}

	p, err := env.store.GetPage(context.Background(), "landing")
	if err != nil {
		t.Fatal(err)
	}
	if p.Views != 1250+1 {
		t.Errorf("views: got %d", p.Views)
	}
}

func TestPublicPageVisibility(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	tests := []struct {
		path   string
		status int
	}{
		{"/about", http.StatusOK},
		{"/contact", http.StatusNotFound}, // draft
		{"/missing", http.StatusNotFound},
		{"/landing", http.StatusNotFound}, // ids do not route
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := env.do(t, http.MethodGet, tt.path, "")
			expectStatus(t, rr, tt.status)
		})
	}
}

func TestPublicPageCache(t *testing.T) {
	pc, mr := newPageCache(t)
	env := newTestEnv(t, testConfig(), pc)

	rr := env.do(t, http.MethodGet, "/about", "")
	expectStatus(t, rr, http.StatusOK)
	if !mr.Exists(cache.Key("/about")) {
		t.Fatal("rendered page should be cached")
	}

	// A cached render is served as is.
	mr.Set(cache.Key("/about"), "<p>cached</p>")
	rr = env.do(t, http.MethodGet, "/about", "")
	expectStatus(t, rr, http.StatusOK)
	if rr.Body.String() != "<p>cached</p>" {
		t.Errorf("body: %q", rr.Body.String())
	}

	// Renaming the page drops the old entry.
	rr = env.do(t, http.MethodPut, "/api/website/pages/about", `{"slug":"/about-us"}`)
	expectStatus(t, rr, http.StatusOK)
	if mr.Exists(cache.Key("/about")) {
		t.Error("old slug should be invalidated")
	}
	expectStatus(t, env.do(t, http.MethodGet, "/about", ""), http.StatusNotFound)
	expectStatus(t, env.do(t, http.MethodGet, "/about-us", ""), http.StatusOK)

	// Settings changes clear every page.
	rr = env.do(t, http.MethodPut, "/api/website/settings", `{"siteName":"New Name"}`)
	expectStatus(t, rr, http.StatusOK)
	if mr.Exists(cache.Key("/about-us")) {
		t.Error("settings update should clear the page cache")
	}
	if !strings.Contains(env.do(t, http.MethodGet, "/about-us", "").Body.String(), "New Name") {
		t.Error("re-render should pick up the new site name")
	}
}

func TestPublicCacheBypassedInDebug(t *testing.T) {
	pc, mr := newPageCache(t)
	cfg := testConfig()
	cfg.Debug = true
	env := newTestEnv(t, cfg, pc)

	expectStatus(t, env.do(t, http.MethodGet, "/about", ""), http.StatusOK)
	if mr.Exists(cache.Key("/about")) {
		t.Error("debug mode should not cache")
	}
}

func TestPublicDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	env := newTestEnv(t, cfg, nil)

	rr := env.do(t, http.MethodGet, "/about", "")
	expectStatus(t, rr, http.StatusServiceUnavailable)
	if !strings.Contains(rr.Body.String(), "currently disabled") {
		t.Errorf("body: %q", rr.Body.String())
	}
}
