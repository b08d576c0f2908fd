// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage places uploaded media bytes somewhere addressable. The S3
// backend writes to an S3-compatible bucket; the mock backend only
// synthesizes a local URL and keeps no bytes.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"sitecms/internal/slug"
)

// Backend names reported by Uploader.Kind.
const (
	KindMock = "mock"
	KindS3   = "s3"
)

// Object is one file to store.
type Object struct {
	Name        string // original file name
	Folder      string // optional logical folder
	ContentType string
	Size        int64
	Body        io.Reader
}

// Stored describes where an object ended up.
type Stored struct {
	Key string // backend key, empty for the mock backend
	URL string
}

// Uploader stores and removes media objects.
type Uploader interface {
	Upload(ctx context.Context, obj Object) (Stored, error)
	Delete(ctx context.Context, key string) error
	Kind() string
}

// folderSegment normalises a user supplied folder name into a single safe
// path segment, or "" when nothing usable remains.
func folderSegment(folder string) string {
	return slug.Generate(strings.ReplaceAll(folder, "/", " "))
}

// ObjectKey builds the bucket key for an upload: media/<folder>/<id><ext>.
func ObjectKey(folder, name, id string) string {
	ext := strings.ToLower(path.Ext(name))
	if seg := folderSegment(folder); seg != "" {
		return "media/" + seg + "/" + id + ext
	}
	return "media/" + id + ext
}

// Mock is the storage used when no bucket is configured.
type Mock struct{}

// NewMock returns a mock uploader.
func NewMock() *Mock { return &Mock{} }

// Upload drains the body and returns /uploads/<folder>/<name>.
func (m *Mock) Upload(_ context.Context, obj Object) (Stored, error) {
	if obj.Body != nil {
		if _, err := io.Copy(io.Discard, obj.Body); err != nil {
			return Stored{}, err
		}
	}
	name := path.Base("/" + obj.Name)
	if seg := folderSegment(obj.Folder); seg != "" {
		return Stored{URL: "/uploads/" + seg + "/" + name}, nil
	}
	return Stored{URL: "/uploads/" + name}, nil
}

// Delete is a no-op.
func (m *Mock) Delete(context.Context, string) error { return nil }

// Kind reports KindMock.
func (m *Mock) Kind() string { return KindMock }
