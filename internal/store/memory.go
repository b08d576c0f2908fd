// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"sitecms/internal/models"
)

// MemoryStore keeps every collection in process memory. A single RWMutex
// makes each operation one atomic step: writers see and leave a consistent
// snapshot and readers never observe a partial write.
type MemoryStore struct {
	mu       sync.RWMutex
	pages    []*models.Page      // insertion order
	media    []*models.MediaFile // most recent first
	settings models.WebsiteSettings

	now   func() time.Time
	newID func() string
}

// NewMemoryStore creates a store holding a copy of the given snapshot.
func NewMemoryStore(seed Snapshot) *MemoryStore {
	s := &MemoryStore{
		settings: *seed.Settings.Clone(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for i := range seed.Pages {
		s.pages = append(s.pages, seed.Pages[i].Clone())
	}
	for i := range seed.Media {
		s.media = append(s.media, seed.Media[i].Clone())
	}
	return s
}

// ListPages returns one window of the pages matching f, in insertion order.
func (s *MemoryStore) ListPages(_ context.Context, f models.PageFilter) ([]models.Page, models.Pagination, error) {
	if err := checkPagination(f.Page, f.Limit); err != nil {
		return nil, models.Pagination{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Page
	for _, p := range s.pages {
		if pageMatches(p, f) {
			matched = append(matched, *p.Clone())
		}
	}
	window, pg := paginate(matched, f.Page, f.Limit)
	return window, pg, nil
}

// GetPage looks a page up by id first, then by slug.
func (s *MemoryStore) GetPage(_ context.Context, idOrSlug string) (*models.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.pageIndex(idOrSlug); i >= 0 {
		return s.pages[i].Clone(), nil
	}
	for _, p := range s.pages {
		if p.Slug == idOrSlug {
			return p.Clone(), nil
		}
	}
	return nil, notFound(msgPageNotFound)
}

// CreatePage validates the input, enforces slug uniqueness and stores a new
// page with empty sections.
func (s *MemoryStore) CreatePage(_ context.Context, in models.NewPage) (*models.Page, error) {
	if err := checkNewPage(&in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slugTaken(in.Slug, "") {
		return nil, conflict("slug", msgSlugTaken)
	}

	now := s.now().UTC()
	p := &models.Page{
		ID:              s.newID(),
		Title:           in.Title,
		Slug:            in.Slug,
		Status:          in.Status,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		MetaKeywords:    in.MetaKeywords,
		Sections:        []models.Section{},
		CreatedAt:       now,
		UpdatedAt:       now,
		Author:          in.Author,
		Views:           0,
	}
	s.pages = append(s.pages, p)
	return p.Clone(), nil
}

// UpdatePage merges patch into the page with the given id. Slugs do not
// address pages here.
func (s *MemoryStore) UpdatePage(_ context.Context, id string, patch models.PagePatch) (*models.Page, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.pageIndex(id)
	if i < 0 {
		return nil, "", notFound(msgPageNotFound)
	}
	prev := s.pages[i].Slug

	next, slugChanged, err := applyPagePatch(s.pages[i], patch)
	if err != nil {
		return nil, "", err
	}
	if slugChanged && s.slugTaken(next.Slug, id) {
		return nil, "", conflict("slug", msgSlugTaken)
	}

	next.UpdatedAt = s.now().UTC()
	s.pages[i] = next
	return next.Clone(), prev, nil
}

// DeletePage removes a page unless it is the landing page. References to the
// page are dropped from every media file's usage list.
func (s *MemoryStore) DeletePage(_ context.Context, id string) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.pageIndex(id)
	if i < 0 {
		return nil, notFound(msgPageNotFound)
	}
	p := s.pages[i]
	if p.IsLanding() {
		return nil, forbidden(msgLandingDelete)
	}

	s.pages = slices.Delete(s.pages, i, i+1)
	for _, m := range s.media {
		m.UsedIn = slices.DeleteFunc(m.UsedIn, func(ref string) bool { return ref == id })
	}
	return p, nil
}

// IncrementViews bumps the view counter of a page.
func (s *MemoryStore) IncrementViews(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.pageIndex(id)
	if i < 0 {
		return notFound(msgPageNotFound)
	}
	s.pages[i].Views++
	return nil
}

// ListMedia returns one window of the media matching f, most recent first.
func (s *MemoryStore) ListMedia(_ context.Context, f models.MediaFilter) ([]models.MediaFile, models.Pagination, error) {
	if err := checkPagination(f.Page, f.Limit); err != nil {
		return nil, models.Pagination{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.MediaFile
	for _, m := range s.media {
		if mediaMatches(m, f) {
			matched = append(matched, *m.Clone())
		}
	}
	window, pg := paginate(matched, f.Page, f.Limit)
	return window, pg, nil
}

// GetMedia returns a media file by id.
func (s *MemoryStore) GetMedia(_ context.Context, id string) (*models.MediaFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.mediaIndex(id); i >= 0 {
		return s.media[i].Clone(), nil
	}
	return nil, notFound(msgMediaNotFound)
}

// CreateMedia records an uploaded file at the head of the collection.
func (s *MemoryStore) CreateMedia(_ context.Context, in models.NewMedia) (*models.MediaFile, error) {
	if err := checkNewMedia(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := newMediaFile(s.newID(), in, s.now().UTC())
	s.media = slices.Insert(s.media, 0, m)
	return m.Clone(), nil
}

// DeleteMedia removes an unused media file.
func (s *MemoryStore) DeleteMedia(_ context.Context, id string) (*models.MediaFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.mediaIndex(id)
	if i < 0 {
		return nil, notFound(msgMediaNotFound)
	}
	m := s.media[i]
	if m.InUse() {
		return nil, forbidden(inUseMessage(m))
	}
	s.media = slices.Delete(s.media, i, i+1)
	return m, nil
}

// GetSettings returns a copy of the website settings.
func (s *MemoryStore) GetSettings(_ context.Context) (*models.WebsiteSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone(), nil
}

// UpdateSettings validates and deep-merges patch into the settings.
func (s *MemoryStore) UpdateSettings(_ context.Context, patch models.SettingsPatch) (*models.WebsiteSettings, error) {
	if err := checkSettingsPatch(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = mergeSettings(s.settings, patch)
	return s.settings.Clone(), nil
}

// Stats summarises the stored content.
func (s *MemoryStore) Stats(_ context.Context) (models.WebsiteStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return computeStats(s.pages, s.media), nil
}

func (s *MemoryStore) pageIndex(id string) int {
	return slices.IndexFunc(s.pages, func(p *models.Page) bool { return p.ID == id })
}

func (s *MemoryStore) mediaIndex(id string) int {
	return slices.IndexFunc(s.media, func(m *models.MediaFile) bool { return m.ID == id })
}

// slugTaken reports whether another page (not exceptID) holds slug.
func (s *MemoryStore) slugTaken(slug, exceptID string) bool {
	for _, p := range s.pages {
		if p.Slug == slug && p.ID != exceptID {
			return true
		}
	}
	return false
}

var _ Store = (*MemoryStore)(nil)
