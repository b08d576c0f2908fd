// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store owns the page, media and settings collections. Two backends
// implement the same interface: an in-memory store guarded by a mutex and a
// PostgreSQL store that expresses the same invariants as transactions.
package store

import (
	"context"

	"sitecms/internal/models"
)

// Pagination bounds accepted by the list operations.
const (
	MinLimit = 1
	MaxLimit = 100

	DefaultPageLimit  = 10
	DefaultMediaLimit = 20
)

// Pages is the page collection.
type Pages interface {
	ListPages(ctx context.Context, f models.PageFilter) ([]models.Page, models.Pagination, error)
	GetPage(ctx context.Context, idOrSlug string) (*models.Page, error)
	CreatePage(ctx context.Context, in models.NewPage) (*models.Page, error)
	// UpdatePage also returns the slug the page held before the update.
	UpdatePage(ctx context.Context, id string, patch models.PagePatch) (page *models.Page, prevSlug string, err error)
	DeletePage(ctx context.Context, id string) (*models.Page, error)
	IncrementViews(ctx context.Context, id string) error
}

// Media is the media file collection.
type Media interface {
	ListMedia(ctx context.Context, f models.MediaFilter) ([]models.MediaFile, models.Pagination, error)
	GetMedia(ctx context.Context, id string) (*models.MediaFile, error)
	CreateMedia(ctx context.Context, in models.NewMedia) (*models.MediaFile, error)
	DeleteMedia(ctx context.Context, id string) (*models.MediaFile, error)
}

// Settings is the website settings singleton.
type Settings interface {
	GetSettings(ctx context.Context) (*models.WebsiteSettings, error)
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) (*models.WebsiteSettings, error)
}

// Store is the full content store.
type Store interface {
	Pages
	Media
	Settings
	Stats(ctx context.Context) (models.WebsiteStats, error)
}
