// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the handler tests:
// a seeded in-memory store, a router wired like production and a spy store.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sitecms/internal/cache"
	"sitecms/internal/config"
	"sitecms/internal/models"
	"sitecms/internal/render"
	"sitecms/internal/storage"
	"sitecms/internal/store"
)

// testConfig returns a valid, enabled configuration with a small upload limit.
func testConfig() *config.Config {
	return &config.Config{
		Env:           "testing",
		Enabled:       true,
		MockData:      true,
		Store:         config.StoreMemory,
		Tier:          config.TierPremium,
		APIBaseURL:    "/api/website",
		UploadMaxSize: 1024,
		AllowedTypes:  append([]string(nil), config.DefaultAllowedTypes...),
		CacheEnabled:  true,
		CacheTTL:      3600,
		APITimeout:    30000,
	}
}

// spyUploader wraps the mock storage, hands out keys and records deletes.
type spyUploader struct {
	storage.Mock
	mu      sync.Mutex
	deleted []string
}

func (u *spyUploader) Upload(ctx context.Context, obj storage.Object) (storage.Stored, error) {
	st, err := u.Mock.Upload(ctx, obj)
	st.Key = storage.ObjectKey(obj.Folder, obj.Name, "obj")
	return st, err
}

func (u *spyUploader) Delete(_ context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.deleted = append(u.deleted, key)
	return nil
}

// spyStore counts every call before delegating.
type spyStore struct {
	store.Store
	calls atomic.Int32
}

func (s *spyStore) ListPages(ctx context.Context, f models.PageFilter) ([]models.Page, models.Pagination, error) {
	s.calls.Add(1)
	return s.Store.ListPages(ctx, f)
}

func (s *spyStore) GetPage(ctx context.Context, idOrSlug string) (*models.Page, error) {
	s.calls.Add(1)
	return s.Store.GetPage(ctx, idOrSlug)
}

func (s *spyStore) CreatePage(ctx context.Context, in models.NewPage) (*models.Page, error) {
	s.calls.Add(1)
	return s.Store.CreatePage(ctx, in)
}

func (s *spyStore) UpdatePage(ctx context.Context, id string, patch models.PagePatch) (*models.Page, string, error) {
	s.calls.Add(1)
	return s.Store.UpdatePage(ctx, id, patch)
}

func (s *spyStore) DeletePage(ctx context.Context, id string) (*models.Page, error) {
	s.calls.Add(1)
	return s.Store.DeletePage(ctx, id)
}

func (s *spyStore) IncrementViews(ctx context.Context, id string) error {
	s.calls.Add(1)
	return s.Store.IncrementViews(ctx, id)
}

func (s *spyStore) ListMedia(ctx context.Context, f models.MediaFilter) ([]models.MediaFile, models.Pagination, error) {
	s.calls.Add(1)
	return s.Store.ListMedia(ctx, f)
}

func (s *spyStore) GetMedia(ctx context.Context, id string) (*models.MediaFile, error) {
	s.calls.Add(1)
	return s.Store.GetMedia(ctx, id)
}

func (s *spyStore) CreateMedia(ctx context.Context, in models.NewMedia) (*models.MediaFile, error) {
	s.calls.Add(1)
	return s.Store.CreateMedia(ctx, in)
}

func (s *spyStore) DeleteMedia(ctx context.Context, id string) (*models.MediaFile, error) {
	s.calls.Add(1)
	return s.Store.DeleteMedia(ctx, id)
}

func (s *spyStore) GetSettings(ctx context.Context) (*models.WebsiteSettings, error) {
	s.calls.Add(1)
	return s.Store.GetSettings(ctx)
}

func (s *spyStore) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (*models.WebsiteSettings, error) {
	s.calls.Add(1)
	return s.Store.UpdateSettings(ctx, patch)
}

func (s *spyStore) Stats(ctx context.Context) (models.WebsiteStats, error) {
	s.calls.Add(1)
	return s.Store.Stats(ctx)
}

// testEnv bundles a router with the state behind it.
type testEnv struct {
	cfg      *config.Config
	store    *spyStore
	uploads  *spyUploader
	router   http.Handler
}

// newTestEnv wires the API and public handlers on a chi router the same way
// the production router does. pageCache may be nil.
func newTestEnv(t *testing.T, cfg *config.Config, pageCache *cache.PageCache) *testEnv {
	t.Helper()

	st := &spyStore{Store: store.NewMemoryStore(store.DefaultSnapshot())}
	up := &spyUploader{}
	log := zap.NewNop()

	renderer, err := render.New(log)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	api := NewAPI(cfg, st, up, pageCache, log)
	pub := NewPublic(cfg, st, renderer, pageCache, log)

	r := chi.NewRouter()
	r.Route("/api/website", func(r chi.Router) {
		r.Get("/health", api.Health)
		r.Group(func(r chi.Router) {
			r.Use(api.RequireEnabled)
			r.Get("/stats", api.Stats)
			r.Get("/section-templates", api.SectionTemplates)
			r.Get("/pages", api.ListPages)
			r.Post("/pages", api.CreatePage)
			r.Get("/pages/{id}", api.GetPage)
			r.Put("/pages/{id}", api.UpdatePage)
			r.Delete("/pages/{id}", api.DeletePage)
			r.Get("/media", api.ListMedia)
			r.Post("/media/upload", api.UploadMedia)
			r.Get("/media/{id}", api.GetMedia)
			r.Delete("/media/{id}", api.DeleteMedia)
			r.Get("/settings", api.GetSettings)
			r.Put("/settings", api.UpdateSettings)
		})
	})
	r.Get("/", pub.Landing)
	r.Get("/{slug}", pub.Page)

	return &testEnv{cfg: cfg, store: st, uploads: up, router: r}
}

// do sends a request with an optional JSON body.
func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// envelope is the decoded API response with data kept raw.
type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Message    string             `json:"message"`
	Pagination *models.Pagination `json:"pagination"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rr.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v\ndata: %s", err, env.Data)
	}
}

func expectStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status: got %d, want %d\nbody: %s", rr.Code, want, rr.Body.String())
	}
}
