// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package validate holds the pure format predicates shared by the store and
// the HTTP handlers: email, URL, color, upload limits and field lengths.
package validate

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	hexColor = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	rgbColor = regexp.MustCompile(`^rgba?\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*(,\s*[\d.]+)?\s*\)$`)
	hslColor = regexp.MustCompile(`^hsla?\(\s*\d+\s*,\s*\d+%\s*,\s*\d+%\s*(,\s*[\d.]+)?\s*\)$`)
)

// Field length limits.
const (
	MaxTitleLen        = 300
	MaxSlugLen         = 300
	MaxMetaTitleLen    = 300
	MaxMetaDescLen     = 500
	MaxMetaKeywordsLen = 500
)

// Email reports whether s looks like local@domain.tld.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// URL reports whether s parses as an absolute URL.
func URL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// Color reports whether s is a 3/6-digit hex color, rgb(a)() or hsl(a)().
func Color(s string) bool {
	return hexColor.MatchString(s) || rgbColor.MatchString(s) || hslColor.MatchString(s)
}

// Upload describes a file about to be stored.
type Upload struct {
	Size     int64
	MimeType string
}

// Limits are the configured upload constraints.
type Limits struct {
	MaxSize      int64
	AllowedTypes []string
}

// FileUpload checks size first, then MIME type. It returns an empty string
// when the upload is acceptable, otherwise a message naming the violated limit.
func FileUpload(f Upload, lim Limits) string {
	if f.Size > lim.MaxSize {
		return fmt.Sprintf("File size exceeds maximum allowed size of %s", FormatFileSize(lim.MaxSize))
	}
	for _, t := range lim.AllowedTypes {
		if t == f.MimeType {
			return ""
		}
	}
	return fmt.Sprintf("File type %s is not allowed. Allowed types: %s",
		f.MimeType, strings.Join(lim.AllowedTypes, ", "))
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count in base-1024 units with at most two
// decimals: 0 → "0 Bytes", 1536 → "1.5 KB", 1048576 → "1 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}

// Length returns a message when s exceeds max runes, otherwise "".
func Length(field, s string, max int) string {
	if utf8.RuneCountInString(s) > max {
		return fmt.Sprintf("%s is too long (max %d characters)", field, max)
	}
	return ""
}
