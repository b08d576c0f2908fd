// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// PageStatus represents the publishing state of a page.
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
)

// Valid reports whether s is one of the known statuses.
func (s PageStatus) Valid() bool {
	return s == PageStatusDraft || s == PageStatusPublished
}

// LandingSlug is the slug of the landing page. Exactly one page may hold it
// and that page cannot be deleted.
const LandingSlug = "/"

// DefaultAuthor is recorded on pages created through the API.
const DefaultAuthor = "Admin"

// Page is a publishable unit of website content composed of ordered sections.
type Page struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Status          PageStatus `json:"status"`
	MetaTitle       string     `json:"metaTitle,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	MetaKeywords    string     `json:"metaKeywords,omitempty"`
	Sections        []Section  `json:"sections"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	Author          string     `json:"author"`
	Views           int        `json:"views"`
}

// IsPublished returns true if the page is in published status.
func (p *Page) IsPublished() bool {
	return p.Status == PageStatusPublished
}

// IsLanding returns true if the page is the site's landing page.
func (p *Page) IsLanding() bool {
	return p.Slug == LandingSlug
}

// Clone returns a deep copy so callers can never alias a stored page.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Sections = CloneSections(p.Sections)
	return &cp
}

// NewPage is the input to page creation.
type NewPage struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Status          PageStatus `json:"status,omitempty"`
	MetaTitle       string     `json:"metaTitle,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	MetaKeywords    string     `json:"metaKeywords,omitempty"`

	// Author is taken from the caller's credentials, never from the body.
	Author string `json:"-"`
}

// PagePatch is a partial page update. Nil fields are left untouched;
// a non-nil Sections replaces the section list wholesale.
type PagePatch struct {
	Title           *string     `json:"title,omitempty"`
	Slug            *string     `json:"slug,omitempty"`
	Status          *PageStatus `json:"status,omitempty"`
	MetaTitle       *string     `json:"metaTitle,omitempty"`
	MetaDescription *string     `json:"metaDescription,omitempty"`
	MetaKeywords    *string     `json:"metaKeywords,omitempty"`
	Sections        *[]Section  `json:"sections,omitempty"`
}

// PageFilter narrows a page listing.
type PageFilter struct {
	Status PageStatus
	Search string
	Page   int
	Limit  int
}

// Pagination describes one window of a filtered listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes the pagination block for a listing of total items.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
