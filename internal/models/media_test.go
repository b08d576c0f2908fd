// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

// TestMediaTypeFromName verifies extension-based classification.
func TestMediaTypeFromName(t *testing.T) {
	tests := []struct {
		name string
		want MediaType
	}{
		// Images
		{name: "photo.jpg", want: MediaImage},
		{name: "photo.JPEG", want: MediaImage},
		{name: "logo.png", want: MediaImage},
		{name: "anim.gif", want: MediaImage},
		{name: "hero.webp", want: MediaImage},
		{name: "icons.svg", want: MediaImage},

		// Videos
		{name: "intro.mp4", want: MediaVideo},
		{name: "clip.webm", want: MediaVideo},
		{name: "old.avi", want: MediaVideo},
		{name: "phone.MOV", want: MediaVideo},

		// Everything else
		{name: "brochure.pdf", want: MediaDocument},
		{name: "notes.txt", want: MediaDocument},
		{name: "no-extension", want: MediaDocument},
		{name: "archive.tar.gz", want: MediaDocument},
		{name: "", want: MediaDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MediaTypeFromName(tt.name); got != tt.want {
				t.Errorf("MediaTypeFromName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestMediaFileClone(t *testing.T) {
	orig := &MediaFile{
		ID:         "m1",
		Dimensions: &Dimensions{Width: 10, Height: 20},
		UsedIn:     []string{"landing"},
	}
	cp := orig.Clone()
	cp.Dimensions.Width = 99
	cp.UsedIn[0] = "about"

	if orig.Dimensions.Width != 10 {
		t.Error("Clone shares Dimensions with the original")
	}
	if orig.UsedIn[0] != "landing" {
		t.Error("Clone shares UsedIn with the original")
	}
}

func TestMediaFileInUse(t *testing.T) {
	if (&MediaFile{}).InUse() {
		t.Error("file with no references should not be in use")
	}
	if !(&MediaFile{UsedIn: []string{"landing"}}).InUse() {
		t.Error("referenced file should be in use")
	}
}
