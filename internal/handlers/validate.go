// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"

	"sitecms/internal/models"
)

// validateNewPage checks the request shape before the store sees it and
// returns the first problem found.
func validateNewPage(in models.NewPage) string {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Slug) == "" {
		return "Title and slug are required"
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Sprintf("Invalid status %q. Must be 'published' or 'draft'", in.Status)
	}
	return ""
}

// validateMediaFilter checks the optional type filter of a media listing.
func validateMediaFilter(t models.MediaType) string {
	if t != "" && !t.Valid() {
		return fmt.Sprintf("Invalid media type %q. Must be 'image', 'video' or 'document'", t)
	}
	return ""
}
