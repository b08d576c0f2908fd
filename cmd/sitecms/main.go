// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the website CMS server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"sitecms/internal/cache"
	"sitecms/internal/config"
	"sitecms/internal/database"
	"sitecms/internal/handlers"
	"sitecms/internal/logging"
	"sitecms/internal/middleware"
	"sitecms/internal/models"
	"sitecms/internal/render"
	"sitecms/internal/router"
	"sitecms/internal/storage"
	"sitecms/internal/store"
	"sitecms/web"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; the config decides its format.
		logging.New(logging.Options{}).Fatal("failed to load configuration", zap.Error(err))
	}

	log := logging.New(logging.Options{
		Development: cfg.IsDev() || cfg.Debug,
		File:        cfg.LogFile,
	})
	defer func() { _ = log.Sync() }()

	log.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("addr", cfg.Addr()),
		zap.String("store", cfg.Store),
	)
	if cfg.Debug {
		logCMSConfiguration(log, cfg)
	}
	if errs := cfg.ValidateCMS(); len(errs) > 0 {
		log.Warn("cms configuration has errors", zap.Strings("errors", errs))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	// Rendered-page cache in Valkey (optional, the site works without it).
	var pageCache *cache.PageCache
	if cfg.UseCache() {
		valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, log)
		if err != nil {
			log.Warn("valkey unavailable, page cache disabled", zap.Error(err))
		} else {
			defer valkeyClient.Close()
			pageCache = cache.NewPageCache(valkeyClient, time.Duration(cfg.CacheTTL)*time.Second, log)
		}
	}

	// Media storage: S3 when configured, mock URLs otherwise.
	var uploads storage.Uploader = storage.NewMock()
	s3, err := storage.NewS3(storage.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})
	switch {
	case err != nil:
		log.Fatal("failed to initialize S3 storage", zap.Error(err))
	case s3 != nil:
		uploads = s3
		log.Info("s3 storage connected", zap.String("endpoint", cfg.S3Endpoint), zap.String("bucket", cfg.S3Bucket))
	default:
		log.Warn("s3 storage not configured, uploads get mock URLs")
	}

	renderer, err := render.New(log)
	if err != nil {
		log.Fatal("failed to initialize page renderer", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	uploadLimiter := middleware.NewRateLimiter(cfg.MaxConcurrentUploads, time.Minute, "Too many uploads, please try again later")
	go uploadLimiter.Run(ctx, 5*time.Minute)

	r := router.New(router.Deps{
		Config:        cfg,
		Log:           log,
		API:           handlers.NewAPI(cfg, st, uploads, pageCache, log),
		Public:        handlers.NewPublic(cfg, st, renderer, pageCache, log),
		Metrics:       middleware.NewMetrics(reg),
		UploadLimiter: uploadLimiter,
		Static:        web.Static(),
	})

	srv := newServer(cfg, r)

	go func() {
		log.Info("server starting", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped gracefully")
}

// newServer wraps h so every request is bounded by the configured timeout.
func newServer(cfg *config.Config, h http.Handler) *http.Server {
	timeout := cfg.RequestTimeout()
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           http.TimeoutHandler(h, timeout, `{"success":false,"message":"Request timed out"}`),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// openStore builds the configured store backend. The returned func releases
// its resources.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Store, func()) {
	if cfg.Store != config.StorePostgres {
		log.Info("using in-memory store", zap.Bool("seeded", cfg.MockData))
		return store.NewMemoryStore(initialSnapshot(cfg)), func() {}
	}

	db, err := database.Connect(ctx, cfg.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	// Seeding is a no-op when pages already exist.
	if err := database.Seed(ctx, db, initialSnapshot(cfg), log); err != nil {
		log.Fatal("failed to seed database", zap.Error(err))
	}
	return store.NewPostgresStore(db), func() { _ = db.Close() }
}

// initialSnapshot is the demo content with mock data on, otherwise an empty
// site that keeps only the landing page and the settings.
func initialSnapshot(cfg *config.Config) store.Snapshot {
	snap := store.DefaultSnapshot()
	if cfg.MockData {
		return snap
	}
	for _, p := range snap.Pages {
		if p.IsLanding() {
			snap.Pages = []models.Page{p}
			break
		}
	}
	snap.Media = nil
	return snap
}

func logCMSConfiguration(log *zap.Logger, cfg *config.Config) {
	log.Debug("website cms configuration",
		zap.Bool("enabled", cfg.Enabled),
		zap.Bool("debug", cfg.Debug),
		zap.Bool("mock_data", cfg.MockData),
		zap.String("tier", cfg.Tier),
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.Int64("upload_max_size", cfg.UploadMaxSize),
		zap.Strings("allowed_types", cfg.AllowedTypes),
		zap.Bool("cache_enabled", cfg.CacheEnabled),
		zap.Int("cache_ttl", cfg.CacheTTL),
		zap.Int("cache_max_size", cfg.CacheMaxSize),
		zap.Int("api_timeout_ms", cfg.APITimeout),
		zap.Int("retry_attempts", cfg.RetryAttempts),
		zap.Bool("jwt_auth", cfg.JWTSecret != ""),
	)
}
