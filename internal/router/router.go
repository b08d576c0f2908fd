// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains of the CMS.
// The JSON API lives under the configured base URL; published pages are
// served from the root.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sitecms/internal/config"
	"sitecms/internal/handlers"
	"sitecms/internal/middleware"
)

// Deps are the handlers and middleware the router wires together.
// Metrics, UploadLimiter and Static are optional.
type Deps struct {
	Config        *config.Config
	Log           *zap.Logger
	API           *handlers.API
	Public        *handlers.Public
	Metrics       *middleware.Metrics
	UploadLimiter *middleware.RateLimiter
	Static        fs.FS
}

// New creates the chi router with every middleware and route group wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer(d.Log))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.SecureHeaders)

	// Process liveness, independent of whether the CMS is enabled.
	r.Get("/health", healthHandler)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	requireAdmin := middleware.RequireRole(d.Config.JWTSecret, middleware.RoleAdmin)
	uploadLimit := func(next http.Handler) http.Handler { return next }
	if d.UploadLimiter != nil {
		uploadLimit = d.UploadLimiter.Middleware
	}

	r.Route(d.Config.APIBaseURL, func(r chi.Router) {
		r.Use(middleware.CORS)

		// Preflight answers are never gated.
		r.Options("/health", middleware.Preflight(http.MethodGet))
		r.Options("/stats", middleware.Preflight(http.MethodGet))
		r.Options("/section-templates", middleware.Preflight(http.MethodGet))
		r.Options("/pages", middleware.Preflight(http.MethodGet, http.MethodPost))
		r.Options("/pages/{id}", middleware.Preflight(http.MethodGet, http.MethodPut, http.MethodDelete))
		r.Options("/media", middleware.Preflight(http.MethodGet))
		r.Options("/media/upload", middleware.Preflight(http.MethodPost))
		r.Options("/media/{id}", middleware.Preflight(http.MethodGet, http.MethodDelete))
		r.Options("/settings", middleware.Preflight(http.MethodGet, http.MethodPut))

		r.Get("/health", d.API.Health)

		r.Group(func(r chi.Router) {
			r.Use(d.API.RequireEnabled)

			r.Get("/stats", d.API.Stats)
			r.Get("/section-templates", d.API.SectionTemplates)

			r.Get("/pages", d.API.ListPages)
			r.With(requireAdmin).Post("/pages", d.API.CreatePage)
			r.Get("/pages/{id}", d.API.GetPage)
			r.With(requireAdmin).Put("/pages/{id}", d.API.UpdatePage)
			r.With(requireAdmin).Delete("/pages/{id}", d.API.DeletePage)

			r.Get("/media", d.API.ListMedia)
			r.With(requireAdmin, uploadLimit).Post("/media/upload", d.API.UploadMedia)
			r.Get("/media/{id}", d.API.GetMedia)
			r.With(requireAdmin).Delete("/media/{id}", d.API.DeleteMedia)

			r.Get("/settings", d.API.GetSettings)
			r.With(requireAdmin).Put("/settings", d.API.UpdateSettings)
		})
	})

	// Public pages and their assets.
	if d.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(d.Static))))
	}
	r.Get("/", d.Public.Landing)
	r.Get("/{slug}", d.Public.Page)

	return r
}

// healthHandler returns a simple JSON liveness response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
