// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render turns a page's sections into public HTML. Build is the
// pure dispatch step: it filters, orders and resolves every section into a
// Block descriptor. Renderer then executes the embedded templates.
package render

import (
	"cmp"
	"slices"

	"sitecms/internal/models"
)

// Block is the render descriptor of one enabled section.
type Block struct {
	ID          string
	Name        string
	Type        models.SectionType
	Title       string
	Description string

	// Divider is set on every block but the first.
	Divider bool

	// Unknown marks a section whose type has no builder. Data then holds
	// models.UnknownData with the raw payload.
	Unknown bool

	// Data is the typed payload with defaults applied.
	Data models.SectionData
}

// Template returns the name of the section template that renders b.
func (b Block) Template() string {
	if b.Unknown {
		return "section-unknown"
	}
	return "section-" + string(b.Type)
}

// heading holds the fallback title and description of a section type.
type heading struct{ title, description string }

var defaults = map[models.SectionType]heading{
	models.SectionHero:         {"Default Hero Title", "Default hero subtitle"},
	models.SectionContent:      {"Content Section", "Content description"},
	models.SectionFeatures:     {"Features", "Our amazing features"},
	models.SectionCourses:      {"Our Courses", "Explore our course offerings"},
	models.SectionTechnologies: {"Technologies", "Technologies we teach"},
	models.SectionTestimonials: {"Testimonials", "What our clients say"},
	models.SectionContact:      {"Contact Us", "Get in touch with us"},
	models.SectionCTA:          {"Get Started", "Follow these simple steps"},
	models.SectionGallery:      {"Gallery", "A look inside"},
	models.SectionTeam:         {"Our Team", "Meet the people behind the work"},
	models.SectionPricing:      {"Pricing", "Choose the plan that fits you"},
	models.SectionFAQ:          {"Frequently Asked Questions", "Answers to common questions"},
}

// DefaultSteps is shown by a cta section that defines no steps of its own.
var DefaultSteps = []models.Step{
	{Number: 1, Title: "Sign Up", Description: "Create your account with your email address to join our learning platform."},
	{Number: 2, Title: "Explore Courses", Description: "Browse our catalog of professional courses and select the ones that match your goals."},
	{Number: 3, Title: "Enroll in Session", Description: "Choose an available session with open seats that fits your schedule."},
	{Number: 4, Title: "Learn", Description: "Access course materials, participate in discussions, and track your progress."},
}

// DefaultCTA is the call to action of a cta section without one.
var DefaultCTA = models.CallToAction{Text: "Join 1Tech Today", Href: "/signup", Style: "primary"}

// Build returns the enabled sections in ascending order, each resolved to
// a Block. Sections sharing an order keep their input order. Build never
// fails: a section of unknown type becomes a placeholder block.
func Build(sections []models.Section) []Block {
	enabled := make([]models.Section, 0, len(sections))
	for _, s := range sections {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	slices.SortStableFunc(enabled, func(a, b models.Section) int {
		return cmp.Compare(a.Order, b.Order)
	})

	blocks := make([]Block, 0, len(enabled))
	for i, s := range enabled {
		b := describe(s)
		b.Divider = i > 0
		blocks = append(blocks, b)
	}
	return blocks
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// describe dispatches a single section on its payload variant.
func describe(s models.Section) Block {
	b := Block{ID: s.ID, Name: s.Name, Type: s.Type}

	data := s.Data
	if data == nil {
		data = models.EmptySectionData(s.Type)
	}
	if data.SectionType() != s.Type {
		// Payload and declared type disagree; trust neither.
		data = models.UnknownData{Type: s.Type}
	}

	h, known := defaults[s.Type]
	titled := func(title, desc string) {
		b.Title = or(title, h.title)
		b.Description = or(desc, h.description)
	}

	switch d := data.(type) {
	case models.HeroData:
		titled(d.Title, d.Subtitle)
	case models.ContentData:
		titled(d.Title, d.Description)
	case models.FeaturesData:
		titled(d.Title, d.Description)
	case models.CoursesData:
		titled(d.Title, d.Description)
	case models.TechnologiesData:
		titled(d.Title, d.Description)
	case models.TestimonialsData:
		titled(d.Title, d.Description)
	case models.ContactData:
		titled(d.Title, d.Description)
	case models.CTAData:
		titled(d.Title, d.Description)
		if len(d.Steps) == 0 {
			d.Steps = DefaultSteps
		}
		if d.PrimaryCTA == nil {
			c := DefaultCTA
			d.PrimaryCTA = &c
		}
		data = d
	case models.GalleryData:
		titled(d.Title, d.Description)
	case models.TeamData:
		titled(d.Title, d.Description)
	case models.PricingData:
		titled(d.Title, d.Description)
	case models.FAQData:
		titled(d.Title, d.Description)
	default:
		known = false
	}

	if !known {
		b.Unknown = true
		b.Title = "Unknown Section Type: " + string(s.Type)
		b.Description = "This section type is not yet implemented."
		if _, ok := data.(models.UnknownData); !ok {
			data = models.UnknownData{Type: s.Type}
		}
	}
	b.Data = data
	return b
}
