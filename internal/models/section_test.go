// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSectionUnmarshal_TypedVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, data SectionData)
	}{
		{
			name:  "hero with CTAs",
			input: `{"id":"hero","name":"Hero","type":"hero","enabled":true,"order":1,"data":{"title":"Welcome","primaryCTA":{"text":"Enroll Now","href":"/signup","style":"primary"}}}`,
			check: func(t *testing.T, data SectionData) {
				hero, ok := data.(HeroData)
				if !ok {
					t.Fatalf("data is %T, want HeroData", data)
				}
				if hero.Title != "Welcome" || hero.PrimaryCTA == nil || hero.PrimaryCTA.Href != "/signup" {
					t.Errorf("unexpected hero data: %+v", hero)
				}
			},
		},
		{
			name:  "features list",
			input: `{"id":"why","type":"features","data":{"features":[{"id":"a","title":"A","description":"d","icon":"eye"}]}}`,
			check: func(t *testing.T, data SectionData) {
				f, ok := data.(FeaturesData)
				if !ok {
					t.Fatalf("data is %T, want FeaturesData", data)
				}
				if len(f.Features) != 1 || f.Features[0].Icon != "eye" {
					t.Errorf("unexpected features: %+v", f.Features)
				}
			},
		},
		{
			name:  "faq items",
			input: `{"id":"faq","type":"faq","data":{"faqs":[{"question":"Q?","answer":"A."}]}}`,
			check: func(t *testing.T, data SectionData) {
				f, ok := data.(FAQData)
				if !ok || len(f.FAQs) != 1 || f.FAQs[0].Answer != "A." {
					t.Errorf("unexpected faq data: %#v", data)
				}
			},
		},
		{
			name:  "missing data yields empty variant",
			input: `{"id":"c","type":"contact"}`,
			check: func(t *testing.T, data SectionData) {
				if _, ok := data.(ContactData); !ok {
					t.Errorf("data is %T, want ContactData", data)
				}
			},
		},
		{
			name:  "null data yields empty variant",
			input: `{"id":"c","type":"courses","data":null}`,
			check: func(t *testing.T, data SectionData) {
				if _, ok := data.(CoursesData); !ok {
					t.Errorf("data is %T, want CoursesData", data)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Section
			if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			tt.check(t, s.Data)
			if s.Data.SectionType() != s.Type {
				t.Errorf("data reports type %q, section type %q", s.Data.SectionType(), s.Type)
			}
		})
	}
}

func TestSectionUnknownTypeRoundTrip(t *testing.T) {
	input := `{"id":"x","name":"Mystery","type":"carousel","enabled":true,"order":3,"data":{"slides":[1,2,3]}}`

	var s Section
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	u, ok := s.Data.(UnknownData)
	if !ok {
		t.Fatalf("data is %T, want UnknownData", s.Data)
	}
	if u.Type != "carousel" {
		t.Errorf("UnknownData.Type = %q, want carousel", u.Type)
	}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(out), `"data":{"slides":[1,2,3]}`) {
		t.Errorf("raw payload not preserved: %s", out)
	}
}

func TestSectionUnmarshal_BadPayload(t *testing.T) {
	var s Section
	err := json.Unmarshal([]byte(`{"id":"h","type":"hero","data":{"title":42}}`), &s)
	if err == nil {
		t.Fatal("expected an error for a non-string hero title")
	}
}

func TestSectionMarshal_NilData(t *testing.T) {
	out, err := json.Marshal(Section{ID: "h", Type: SectionHero})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(out), `"data":{}`) {
		t.Errorf("nil data should marshal as an empty object, got %s", out)
	}
}

func TestSectionTypeKnown(t *testing.T) {
	for _, st := range SectionTypes {
		if !st.Known() {
			t.Errorf("%q should be known", st)
		}
		if got := EmptySectionData(st).SectionType(); got != st {
			t.Errorf("EmptySectionData(%q).SectionType() = %q", st, got)
		}
	}
	if SectionType("slider").Known() {
		t.Error("slider should not be known")
	}
}

func TestCloneSectionsIsDeep(t *testing.T) {
	orig := []Section{{
		ID:   "why",
		Type: SectionFeatures,
		Data: FeaturesData{Features: []Feature{{ID: "a", Title: "A"}}},
	}}
	cp := CloneSections(orig)
	cp[0].Data.(FeaturesData).Features[0].Title = "changed"

	if orig[0].Data.(FeaturesData).Features[0].Title != "A" {
		t.Error("CloneSections shares feature slices with the original")
	}
	if got := CloneSections(nil); got == nil || len(got) != 0 {
		t.Errorf("CloneSections(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page, limit, total, wantPages int
	}{
		{1, 10, 0, 0},
		{1, 10, 9, 1},
		{1, 10, 10, 1},
		{2, 10, 11, 2},
		{1, 3, 10, 4},
	}
	for _, tt := range tests {
		p := NewPagination(tt.page, tt.limit, tt.total)
		if p.TotalPages != tt.wantPages {
			t.Errorf("NewPagination(%d, %d, %d).TotalPages = %d, want %d",
				tt.page, tt.limit, tt.total, p.TotalPages, tt.wantPages)
		}
	}
}

func TestPageIsLanding(t *testing.T) {
	if !(&Page{Slug: "/"}).IsLanding() {
		t.Error("slug / should be the landing page")
	}
	if (&Page{Slug: "/about"}).IsLanding() {
		t.Error("/about should not be the landing page")
	}
}
