// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"sitecms/internal/models"
	"sitecms/internal/slug"
	"sitecms/internal/validate"
)

// Messages shared by both backends.
const (
	msgInvalidPagination = "Invalid pagination parameters"
	msgTitleSlugRequired = "Title and slug are required"
	msgSlugFormat        = "Slug must contain only lowercase letters, numbers, and hyphens"
	msgSlugTaken         = "A page with this slug already exists"
	msgPageNotFound      = "Page not found"
	msgLandingDelete     = "Cannot delete the landing page"
	msgMediaNotFound     = "Media file not found"
)

func checkPagination(page, limit int) error {
	if page < 1 || limit < MinLimit || limit > MaxLimit {
		return badRequest("pagination", msgInvalidPagination)
	}
	return nil
}

// paginate returns the 1-based window of items.
func paginate[T any](items []T, page, limit int) ([]T, models.Pagination) {
	p := models.NewPagination(page, limit, len(items))
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}, p
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], p
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}

func pageMatches(p *models.Page, f models.PageFilter) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return containsFold(p.Title, term) || containsFold(p.Slug, term) || containsFold(p.MetaDescription, term)
}

func mediaMatches(m *models.MediaFile, f models.MediaFilter) bool {
	if f.Type != "" && m.Type != f.Type {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return containsFold(m.Name, term) || containsFold(m.Alt, term) || containsFold(m.Caption, term)
}

func checkSlug(s string) error {
	if !slug.Valid(s) {
		return badRequest("slug", msgSlugFormat)
	}
	if msg := validate.Length("Slug", s, validate.MaxSlugLen); msg != "" {
		return badRequest("slug", msg)
	}
	return nil
}

func checkMeta(metaTitle, metaDesc, metaKeywords string) error {
	if msg := validate.Length("Meta title", metaTitle, validate.MaxMetaTitleLen); msg != "" {
		return badRequest("metaTitle", msg)
	}
	if msg := validate.Length("Meta description", metaDesc, validate.MaxMetaDescLen); msg != "" {
		return badRequest("metaDescription", msg)
	}
	if msg := validate.Length("Meta keywords", metaKeywords, validate.MaxMetaKeywordsLen); msg != "" {
		return badRequest("metaKeywords", msg)
	}
	return nil
}

// checkNewPage validates creation input, stores the slug in its leading-slash
// form and fills in the default status and author.
func checkNewPage(in *models.NewPage) error {
	if strings.TrimSpace(in.Title) == "" || in.Slug == "" {
		return badRequest("title", msgTitleSlugRequired)
	}
	if msg := validate.Length("Title", in.Title, validate.MaxTitleLen); msg != "" {
		return badRequest("title", msg)
	}
	if err := checkSlug(in.Slug); err != nil {
		return err
	}
	in.Slug = slug.Normalize(in.Slug)
	if in.Author == "" {
		in.Author = models.DefaultAuthor
	}
	if in.Status == "" {
		in.Status = models.PageStatusDraft
	}
	if !in.Status.Valid() {
		return badRequest("status", fmt.Sprintf("Invalid status %q. Must be 'published' or 'draft'", in.Status))
	}
	return checkMeta(in.MetaTitle, in.MetaDescription, in.MetaKeywords)
}

// checkSections enforces locally unique, non-empty section ids and payloads
// that match the declared type.
func checkSections(sections []models.Section) error {
	seen := make(map[string]struct{}, len(sections))
	for i, s := range sections {
		if strings.TrimSpace(s.ID) == "" {
			return badRequest("sections", fmt.Sprintf("Section at position %d has no id", i))
		}
		if _, dup := seen[s.ID]; dup {
			return badRequest("sections", fmt.Sprintf("Duplicate section id %q", s.ID))
		}
		seen[s.ID] = struct{}{}
		if s.Data != nil && s.Data.SectionType() != s.Type {
			return badRequest("sections", fmt.Sprintf("Section %q data does not match type %q", s.ID, s.Type))
		}
	}
	return nil
}

// applyPagePatch validates patch against the current page and merges it into
// a copy. slugChanged reports whether the caller must re-check uniqueness.
func applyPagePatch(cur *models.Page, patch models.PagePatch) (next *models.Page, slugChanged bool, err error) {
	next = cur.Clone()

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, false, badRequest("title", "Title cannot be empty")
		}
		if msg := validate.Length("Title", *patch.Title, validate.MaxTitleLen); msg != "" {
			return nil, false, badRequest("title", msg)
		}
		next.Title = *patch.Title
	}
	if patch.Slug != nil && slug.Normalize(*patch.Slug) != cur.Slug {
		if err := checkSlug(*patch.Slug); err != nil {
			return nil, false, err
		}
		next.Slug = slug.Normalize(*patch.Slug)
		slugChanged = true
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, false, badRequest("status", fmt.Sprintf("Invalid status %q. Must be 'published' or 'draft'", *patch.Status))
		}
		next.Status = *patch.Status
	}
	if patch.MetaTitle != nil {
		next.MetaTitle = *patch.MetaTitle
	}
	if patch.MetaDescription != nil {
		next.MetaDescription = *patch.MetaDescription
	}
	if patch.MetaKeywords != nil {
		next.MetaKeywords = *patch.MetaKeywords
	}
	if err := checkMeta(next.MetaTitle, next.MetaDescription, next.MetaKeywords); err != nil {
		return nil, false, err
	}
	if patch.Sections != nil {
		if err := checkSections(*patch.Sections); err != nil {
			return nil, false, err
		}
		next.Sections = models.CloneSections(*patch.Sections)
	}
	return next, slugChanged, nil
}

func inUseMessage(m *models.MediaFile) string {
	return "Cannot delete media file. It is currently used in: " + strings.Join(m.UsedIn, ", ")
}

// newMediaFile builds the stored record for an upload. Visual media without
// probed dimensions get synthesized ones; documents never carry dimensions.
func newMediaFile(id string, in models.NewMedia, now time.Time) *models.MediaFile {
	m := models.MediaFile{
		ID:         id,
		Name:       in.Name,
		Type:       models.MediaTypeFromName(in.Name),
		URL:        in.URL,
		Size:       in.Size,
		Alt:        in.Alt,
		Caption:    in.Caption,
		UploadedAt: now,
		UsedIn:     []string{},
		StorageKey: in.StorageKey,
	}

	switch m.Type {
	case models.MediaImage, models.MediaVideo:
		if in.Dimensions != nil {
			d := *in.Dimensions
			m.Dimensions = &d
		} else {
			m.Dimensions = SynthesizeDimensions()
		}
	}
	return &m
}

// SynthesizeDimensions returns placeholder dimensions in the range used for
// uploads whose real size could not be probed.
func SynthesizeDimensions() *models.Dimensions {
	return &models.Dimensions{
		Width:  480 + rand.Intn(1920),
		Height: 320 + rand.Intn(1080),
	}
}

func checkNewMedia(in models.NewMedia) error {
	if strings.TrimSpace(in.Name) == "" {
		return badRequest("file", "No file provided")
	}
	if in.Size <= 0 {
		return badRequest("file", "File is empty")
	}
	return nil
}

// checkSettingsPatch validates the fields that carry a format before any of
// the patch is applied.
func checkSettingsPatch(p models.SettingsPatch) error {
	if p.SiteName != nil && strings.TrimSpace(*p.SiteName) == "" {
		return badRequest("siteName", "Site name is required")
	}
	if p.ContactEmail != nil && *p.ContactEmail != "" && !validate.Email(*p.ContactEmail) {
		return badRequest("contactEmail", "Invalid email format")
	}
	if p.AdminEmail != nil && *p.AdminEmail != "" && !validate.Email(*p.AdminEmail) {
		return badRequest("adminEmail", "Invalid email format")
	}
	if p.SiteURL != nil && *p.SiteURL != "" && !validate.URL(*p.SiteURL) {
		return badRequest("siteUrl", "Invalid URL format")
	}
	if a := p.Appearance; a != nil {
		if a.PrimaryColor != nil && !validate.Color(*a.PrimaryColor) {
			return badRequest("appearance.primaryColor", "Invalid primary color format")
		}
		if a.SecondaryColor != nil && !validate.Color(*a.SecondaryColor) {
			return badRequest("appearance.secondaryColor", "Invalid secondary color format")
		}
	}
	return nil
}

// mergeSettings applies a validated patch. Nested objects are merged one by
// one so unspecified nested keys are kept.
func mergeSettings(cur models.WebsiteSettings, p models.SettingsPatch) models.WebsiteSettings {
	next := *cur.Clone()

	setString(&next.SiteName, p.SiteName)
	setString(&next.SiteDescription, p.SiteDescription)
	setString(&next.SiteURL, p.SiteURL)
	setString(&next.AdminEmail, p.AdminEmail)
	setString(&next.MetaTitle, p.MetaTitle)
	setString(&next.MetaDescription, p.MetaDescription)
	setString(&next.MetaKeywords, p.MetaKeywords)
	setString(&next.ContactEmail, p.ContactEmail)
	setString(&next.ContactPhone, p.ContactPhone)
	setString(&next.ContactAddress, p.ContactAddress)

	next.SocialMedia = mergeSocialMedia(next.SocialMedia, p.SocialMedia)
	next.Features = mergeFeatures(next.Features, p.Features)
	next.Appearance = mergeAppearance(next.Appearance, p.Appearance)
	next.Analytics = mergeAnalytics(next.Analytics, p.Analytics)
	return next
}

func mergeSocialMedia(cur models.SocialMedia, p *models.SocialMediaPatch) models.SocialMedia {
	if p == nil {
		return cur
	}
	setString(&cur.Facebook, p.Facebook)
	setString(&cur.Twitter, p.Twitter)
	setString(&cur.Instagram, p.Instagram)
	setString(&cur.LinkedIn, p.LinkedIn)
	setString(&cur.YouTube, p.YouTube)
	setString(&cur.TikTok, p.TikTok)
	return cur
}

func mergeFeatures(cur models.FeatureToggles, p *models.FeaturesPatch) models.FeatureToggles {
	if p == nil {
		return cur
	}
	setBool(&cur.EnableRegistration, p.EnableRegistration)
	setBool(&cur.EnableComments, p.EnableComments)
	setBool(&cur.EnableNewsletter, p.EnableNewsletter)
	setBool(&cur.EnableAnalytics, p.EnableAnalytics)
	return cur
}

func mergeAppearance(cur models.Appearance, p *models.AppearancePatch) models.Appearance {
	if p == nil {
		return cur
	}
	setString(&cur.PrimaryColor, p.PrimaryColor)
	setString(&cur.SecondaryColor, p.SecondaryColor)
	setString(&cur.LogoURL, p.LogoURL)
	setString(&cur.DarkLogoURL, p.DarkLogoURL)
	setString(&cur.FaviconURL, p.FaviconURL)
	return cur
}

func mergeAnalytics(cur *models.Analytics, p *models.AnalyticsPatch) *models.Analytics {
	if p == nil {
		return cur
	}
	next := models.Analytics{}
	if cur != nil {
		next = *cur
	}
	setString(&next.GoogleAnalyticsID, p.GoogleAnalyticsID)
	setString(&next.FacebookPixelID, p.FacebookPixelID)
	return &next
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// computeStats summarises pages and media.
func computeStats(pages []*models.Page, media []*models.MediaFile) models.WebsiteStats {
	var st models.WebsiteStats
	st.TotalPages = len(pages)
	for _, p := range pages {
		switch p.Status {
		case models.PageStatusPublished:
			st.PublishedPages++
		case models.PageStatusDraft:
			st.DraftPages++
		}
		st.TotalSections += len(p.Sections)
	}
	st.MediaFiles = len(media)
	for _, m := range media {
		st.TotalMediaSize += m.Size
		switch m.Type {
		case models.MediaImage:
			st.ImageFiles++
		case models.MediaVideo:
			st.VideoFiles++
		case models.MediaDocument:
			st.DocumentFiles++
		}
	}
	return st
}
