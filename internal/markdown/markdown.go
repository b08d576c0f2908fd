// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts the Markdown body of content sections into
// sanitized HTML. Raw HTML inside the source is parsed by goldmark and then
// filtered through a bluemonday policy, so editors may mix the two.
package markdown

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(), // sanitized afterwards
	),
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
		policy.AllowElements("table", "thead", "tbody", "tr", "th", "td", "u", "s", "mark")
		policy.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
		policy.AllowAttrs("align").OnElements("th", "td")
		// Syntax highlighting emits inline colors.
		policy.AllowStyles("color", "background-color", "font-weight", "font-style", "text-decoration").
			OnElements("span", "pre")
	})
	return policy
}

// ToHTML converts Markdown source into unsanitized HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Sanitize strips dangerous elements and attributes from HTML.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return getPolicy().Sanitize(s)
}

// Render converts Markdown to sanitized HTML ready for a template. Empty or
// whitespace-only input yields an empty fragment.
func Render(source string) (template.HTML, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	out, err := ToHTML(source)
	if err != nil {
		return "", err
	}
	return template.HTML(Sanitize(out)), nil
}
