// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"path/filepath"
	"strings"
	"time"
)

// MediaType classifies an uploaded asset.
type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	return t == MediaImage || t == MediaVideo || t == MediaDocument
}

// Dimensions holds pixel width and height for visual media.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MediaFile is an uploaded asset, tracked by which pages reference it.
// The file itself lives in object storage; StorageKey locates it there.
type MediaFile struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       MediaType   `json:"type"`
	URL        string      `json:"url"`
	Size       int64       `json:"size"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	Alt        string      `json:"alt,omitempty"`
	Caption    string      `json:"caption,omitempty"`
	UploadedAt time.Time   `json:"uploadedAt"`
	UsedIn     []string    `json:"usedIn"`
	StorageKey string      `json:"-"`
}

// InUse reports whether any page references the file.
func (m *MediaFile) InUse() bool {
	return len(m.UsedIn) > 0
}

// Clone returns a deep copy of the file record.
func (m *MediaFile) Clone() *MediaFile {
	if m == nil {
		return nil
	}
	cp := *m
	if m.Dimensions != nil {
		d := *m.Dimensions
		cp.Dimensions = &d
	}
	cp.UsedIn = append([]string{}, m.UsedIn...)
	return &cp
}

// MediaTypeFromName derives the media type from a filename extension.
func MediaTypeFromName(name string) MediaType {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch ext {
	case "jpg", "jpeg", "png", "gif", "webp", "svg":
		return MediaImage
	case "mp4", "webm", "avi", "mov":
		return MediaVideo
	default:
		return MediaDocument
	}
}

// NewMedia is the metadata accompanying an upload.
type NewMedia struct {
	Name       string
	MimeType   string
	Size       int64
	URL        string
	StorageKey string
	Dimensions *Dimensions
	Alt        string
	Caption    string
	Folder     string
}

// MediaFilter narrows a media listing.
type MediaFilter struct {
	Type   MediaType
	Search string
	Page   int
	Limit  int
}
