// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SectionType identifies the kind of content block a section carries.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionContent      SectionType = "content"
	SectionFeatures     SectionType = "features"
	SectionCourses      SectionType = "courses"
	SectionTechnologies SectionType = "technologies"
	SectionTestimonials SectionType = "testimonials"
	SectionContact      SectionType = "contact"
	SectionCTA          SectionType = "cta"
	SectionGallery      SectionType = "gallery"
	SectionTeam         SectionType = "team"
	SectionPricing      SectionType = "pricing"
	SectionFAQ          SectionType = "faq"
)

// SectionTypes lists every known section type in declaration order.
var SectionTypes = []SectionType{
	SectionHero, SectionContent, SectionFeatures, SectionCourses,
	SectionTechnologies, SectionTestimonials, SectionContact, SectionCTA,
	SectionGallery, SectionTeam, SectionPricing, SectionFAQ,
}

// Known reports whether t belongs to the closed set of section types.
func (t SectionType) Known() bool {
	for _, k := range SectionTypes {
		if k == t {
			return true
		}
	}
	return false
}

// Section is a typed, orderable, toggleable content block within a page.
// Data holds exactly one variant matching Type; sections of an unrecognised
// type carry UnknownData so they survive a round trip untouched.
type Section struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Type    SectionType `json:"type"`
	Enabled bool        `json:"enabled"`
	Order   int         `json:"order"`
	Data    SectionData `json:"data"`
}

// SectionData is implemented by every per-type payload.
type SectionData interface {
	SectionType() SectionType
}

// CallToAction is a button link.
type CallToAction struct {
	Text  string `json:"text"`
	Href  string `json:"href"`
	Style string `json:"style,omitempty"` // primary | secondary | outline
}

type Feature struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link,omitempty"`
}

type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
	Content string `json:"content"`
	Avatar  string `json:"avatar,omitempty"`
	Rating  int    `json:"rating,omitempty"`
}

type TeamMember struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Role   string       `json:"role"`
	Bio    string       `json:"bio,omitempty"`
	Avatar string       `json:"avatar,omitempty"`
	Social *TeamSocials `json:"social,omitempty"`
}

type TeamSocials struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Step is one numbered step of an onboarding call-to-action.
type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type PricingPlan struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Price       string        `json:"price"`
	Period      string        `json:"period,omitempty"`
	Features    []string      `json:"features,omitempty"`
	Highlighted bool          `json:"highlighted,omitempty"`
	CTA         *CallToAction `json:"cta,omitempty"`
}

type HeroData struct {
	Title           string        `json:"title,omitempty"`
	Subtitle        string        `json:"subtitle,omitempty"`
	BackgroundImage string        `json:"backgroundImage,omitempty"`
	HeroImage       string        `json:"heroImage,omitempty"`
	PrimaryCTA      *CallToAction `json:"primaryCTA,omitempty"`
	SecondaryCTA    *CallToAction `json:"secondaryCTA,omitempty"`
}

// ContentData carries a Markdown body in Content.
type ContentData struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
}

type FeaturesData struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Features    []Feature `json:"features,omitempty"`
}

type CoursesData struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type TechnologiesData struct {
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

type TestimonialsData struct {
	Title        string        `json:"title,omitempty"`
	Description  string        `json:"description,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty"`
}

type ContactData struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	SupportHours string `json:"supportHours,omitempty"`
}

type CTAData struct {
	Title        string        `json:"title,omitempty"`
	Description  string        `json:"description,omitempty"`
	Steps        []Step        `json:"steps,omitempty"`
	PrimaryCTA   *CallToAction `json:"primaryCTA,omitempty"`
	SecondaryCTA *CallToAction `json:"secondaryCTA,omitempty"`
}

type GalleryData struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Gallery     []MediaFile `json:"gallery,omitempty"`
}

type TeamData struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Team        []TeamMember `json:"team,omitempty"`
}

type PricingData struct {
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Plans       []PricingPlan `json:"plans,omitempty"`
}

type FAQData struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	FAQs        []FAQItem `json:"faqs,omitempty"`
}

// UnknownData preserves the raw payload of a section whose type is not
// recognised.
type UnknownData struct {
	Type SectionType
	Raw  json.RawMessage
}

func (HeroData) SectionType() SectionType         { return SectionHero }
func (ContentData) SectionType() SectionType      { return SectionContent }
func (FeaturesData) SectionType() SectionType     { return SectionFeatures }
func (CoursesData) SectionType() SectionType      { return SectionCourses }
func (TechnologiesData) SectionType() SectionType { return SectionTechnologies }
func (TestimonialsData) SectionType() SectionType { return SectionTestimonials }
func (ContactData) SectionType() SectionType      { return SectionContact }
func (CTAData) SectionType() SectionType          { return SectionCTA }
func (GalleryData) SectionType() SectionType      { return SectionGallery }
func (TeamData) SectionType() SectionType         { return SectionTeam }
func (PricingData) SectionType() SectionType      { return SectionPricing }
func (FAQData) SectionType() SectionType          { return SectionFAQ }
func (u UnknownData) SectionType() SectionType    { return u.Type }

// MarshalJSON emits the raw payload verbatim.
func (u UnknownData) MarshalJSON() ([]byte, error) {
	if len(u.Raw) == 0 {
		return []byte("{}"), nil
	}
	return u.Raw, nil
}

// EmptySectionData returns the zero payload for a section type.
func EmptySectionData(t SectionType) SectionData {
	switch t {
	case SectionHero:
		return HeroData{}
	case SectionContent:
		return ContentData{}
	case SectionFeatures:
		return FeaturesData{}
	case SectionCourses:
		return CoursesData{}
	case SectionTechnologies:
		return TechnologiesData{}
	case SectionTestimonials:
		return TestimonialsData{}
	case SectionContact:
		return ContactData{}
	case SectionCTA:
		return CTAData{}
	case SectionGallery:
		return GalleryData{}
	case SectionTeam:
		return TeamData{}
	case SectionPricing:
		return PricingData{}
	case SectionFAQ:
		return FAQData{}
	default:
		return UnknownData{Type: t}
	}
}

// DecodeSectionData decodes raw JSON into the variant for t.
func DecodeSectionData(t SectionType, raw json.RawMessage) (SectionData, error) {
	if !t.Known() {
		return UnknownData{Type: t, Raw: append(json.RawMessage(nil), raw...)}, nil
	}
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return EmptySectionData(t), nil
	}

	var (
		data SectionData
		err  error
	)
	switch t {
	case SectionHero:
		data, err = decodeInto[HeroData](raw)
	case SectionContent:
		data, err = decodeInto[ContentData](raw)
	case SectionFeatures:
		data, err = decodeInto[FeaturesData](raw)
	case SectionCourses:
		data, err = decodeInto[CoursesData](raw)
	case SectionTechnologies:
		data, err = decodeInto[TechnologiesData](raw)
	case SectionTestimonials:
		data, err = decodeInto[TestimonialsData](raw)
	case SectionContact:
		data, err = decodeInto[ContactData](raw)
	case SectionCTA:
		data, err = decodeInto[CTAData](raw)
	case SectionGallery:
		data, err = decodeInto[GalleryData](raw)
	case SectionTeam:
		data, err = decodeInto[TeamData](raw)
	case SectionPricing:
		data, err = decodeInto[PricingData](raw)
	case SectionFAQ:
		data, err = decodeInto[FAQData](raw)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s section data: %w", t, err)
	}
	return data, nil
}

func decodeInto[T SectionData](raw json.RawMessage) (SectionData, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type sectionJSON struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    SectionType     `json:"type"`
	Enabled bool            `json:"enabled"`
	Order   int             `json:"order"`
	Data    json.RawMessage `json:"data"`
}

// UnmarshalJSON decodes the data payload according to the section type.
func (s *Section) UnmarshalJSON(b []byte) error {
	var raw sectionJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	data, err := DecodeSectionData(raw.Type, raw.Data)
	if err != nil {
		return err
	}
	*s = Section{
		ID:      raw.ID,
		Name:    raw.Name,
		Type:    raw.Type,
		Enabled: raw.Enabled,
		Order:   raw.Order,
		Data:    data,
	}
	return nil
}

// MarshalJSON always emits a data object, even when Data is nil.
func (s Section) MarshalJSON() ([]byte, error) {
	data := s.Data
	if data == nil {
		data = EmptySectionData(s.Type)
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sectionJSON{
		ID:      s.ID,
		Name:    s.Name,
		Type:    s.Type,
		Enabled: s.Enabled,
		Order:   s.Order,
		Data:    encoded,
	})
}

// CloneSections deep-copies a section list. Payloads are copied through a
// JSON round trip since variants contain slices.
func CloneSections(in []Section) []Section {
	if in == nil {
		return []Section{}
	}
	out := make([]Section, len(in))
	for i, s := range in {
		out[i] = s
		if s.Data == nil {
			continue
		}
		raw, err := json.Marshal(s.Data)
		if err != nil {
			continue
		}
		if data, err := DecodeSectionData(s.Type, raw); err == nil {
			out[i].Data = data
		}
	}
	return out
}

// SectionTemplate is a predefined, reusable section starting point.
type SectionTemplate struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        SectionType `json:"type"`
	Description string      `json:"description"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	DefaultData SectionData `json:"defaultData"`
	IsReusable  bool        `json:"isReusable"`
	Category    string      `json:"category"` // header | content | footer | special
}
