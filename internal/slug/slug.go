// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug validates page slugs and generates URL-friendly slugs from
// arbitrary strings.
package slug

import (
	"regexp"
	"strings"
)

// Root is the landing page slug. It is valid on its own and is the only slug
// that is not a hyphenated word sequence.
const Root = "/"

var (
	// pattern matches lowercase alphanumeric words joined by single hyphens.
	pattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Valid reports whether s is an acceptable page slug: the root "/" or a
// hyphenated lowercase word sequence, optionally behind one leading "/".
func Valid(s string) bool {
	if s == Root {
		return true
	}
	return pattern.MatchString(strings.TrimPrefix(s, "/"))
}

// Normalize returns the stored form of a valid slug: the root, or the words
// behind exactly one leading "/". "about" and "/about" both become "/about".
func Normalize(s string) string {
	if s == Root {
		return s
	}
	return "/" + strings.TrimPrefix(s, "/")
}

// FromPath turns a request path segment ("about") into the stored slug form
// ("/about"). An empty segment maps to the root.
func FromPath(segment string) string {
	segment = strings.Trim(segment, "/")
	if segment == "" {
		return Root
	}
	return "/" + segment
}

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.Join(strings.Fields(result), "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
