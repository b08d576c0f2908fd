// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"sitecms/internal/markdown"
	"sitecms/internal/models"
	"sitecms/internal/validate"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageView is the data passed to the page layout.
type PageView struct {
	Page     *models.Page
	Settings *models.WebsiteSettings
	Blocks   []Block
	Year     int
}

// MetaTitle is the document title: the page meta title, else the page title
// followed by the site name.
func (v PageView) MetaTitle() string {
	if v.Page.MetaTitle != "" {
		return v.Page.MetaTitle
	}
	if v.Settings != nil && v.Settings.SiteName != "" {
		return v.Page.Title + " - " + v.Settings.SiteName
	}
	return v.Page.Title
}

// MetaDescription falls back to the site-wide description.
func (v PageView) MetaDescription() string {
	if v.Page.MetaDescription != "" || v.Settings == nil {
		return v.Page.MetaDescription
	}
	return v.Settings.MetaDescription
}

// Renderer executes the embedded page and section templates.
type Renderer struct {
	tmpl *template.Template
	log  *zap.Logger
	now  func() time.Time
}

// New parses the embedded templates.
func New(log *zap.Logger) (*Renderer, error) {
	r := &Renderer{log: log, now: time.Now}

	funcs := template.FuncMap{
		"section":  r.section,
		"markdown": r.markdown,
		"tel":      telURL,
		"cssColor": cssColor,
	}
	tmpl, err := template.New("page").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Page renders a complete HTML document for page.
func (r *Renderer) Page(w io.Writer, page *models.Page, settings *models.WebsiteSettings) error {
	view := PageView{
		Page:     page,
		Settings: settings,
		Blocks:   Build(page.Sections),
		Year:     r.now().Year(),
	}
	if err := r.tmpl.ExecuteTemplate(w, "layout", view); err != nil {
		return fmt.Errorf("render page %s: %w", page.ID, err)
	}
	return nil
}

// section renders one block through its type's template.
func (r *Renderer) section(b Block) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, b.Template(), b); err != nil {
		return "", fmt.Errorf("section %s: %w", b.ID, err)
	}
	return template.HTML(buf.String()), nil
}

// markdown renders a content body. Conversion failures fall back to the
// escaped source so the page still renders.
func (r *Renderer) markdown(src string) template.HTML {
	out, err := markdown.Render(src)
	if err != nil {
		r.log.Warn("markdown conversion failed", zap.Error(err))
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return out
}

// telURL builds a tel: link from a phone number, keeping only dialable
// characters.
func telURL(phone string) template.URL {
	var b strings.Builder
	for _, c := range phone {
		if c == '+' || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return template.URL("tel:" + b.String())
}

// cssColor passes a validated color through to a stylesheet and drops
// anything else.
func cssColor(c string) template.CSS {
	if !validate.Color(c) {
		return ""
	}
	return template.CSS(c)
}
