// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the website CMS: the JSON
// API under the configured base URL and the public page renderer. Handlers
// receive their dependencies through the handler struct and never mutate
// content themselves; every change goes through the store.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"sitecms/internal/cache"
	"sitecms/internal/config"
	"sitecms/internal/respond"
	"sitecms/internal/storage"
	"sitecms/internal/store"
)

// maxJSONBody caps JSON request bodies (1 MB).
const maxJSONBody = 1 << 20

const (
	msgDisabled    = "Website CMS is currently disabled"
	msgInvalidJSON = "Invalid JSON in request body"
)

// API groups the JSON API handlers and their dependencies.
type API struct {
	cfg     *config.Config
	store   store.Store
	uploads storage.Uploader
	pages   *cache.PageCache // nil when caching is off
	log     *zap.Logger
	now     func() time.Time
}

// NewAPI creates the API handler group. pageCache may be nil.
func NewAPI(cfg *config.Config, st store.Store, uploads storage.Uploader, pageCache *cache.PageCache, log *zap.Logger) *API {
	return &API{
		cfg:     cfg,
		store:   st,
		uploads: uploads,
		pages:   pageCache,
		log:     log,
		now:     time.Now,
	}
}

// RequireEnabled answers 503 while the CMS is switched off, before any
// handler behind it can reach the store.
func (a *API) RequireEnabled(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.cfg.Enabled {
			respond.Error(w, http.StatusServiceUnavailable, msgDisabled)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// fail maps a store error to its response. Expected failures carry their own
// message; anything else is logged and reported as "Failed to <action>".
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	var se *store.Error
	if errors.As(err, &se) {
		respond.Error(w, statusFor(se.Kind), se.Message)
		return
	}
	a.log.Error("request failed",
		zap.String("action", action),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	respond.Error(w, http.StatusInternalServerError, "Failed to "+action)
}

func statusFor(k store.Kind) int {
	switch k {
	case store.KindNotFound:
		return http.StatusNotFound
	case store.KindConflict:
		return http.StatusConflict
	case store.KindBadRequest, store.KindForbidden:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a JSON body into dst. On failure it writes the 400
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return false
	}
	return true
}

// pageParams reads the 1-based page and the limit from the query string.
// Range checks are left to the store; only unparsable values fail here.
func pageParams(r *http.Request, defaultLimit int) (page, limit int, ok bool) {
	q := r.URL.Query()
	page, limit = 1, defaultLimit
	var err error
	if v := q.Get("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil {
			return 0, 0, false
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return 0, 0, false
		}
	}
	return page, limit, true
}
