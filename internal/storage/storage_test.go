// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		folder, name, want string
	}{
		{"", "photo.JPG", "media/id.jpg"},
		{"Hero Images", "bg.png", "media/hero-images/id.png"},
		{"../../etc", "x.pdf", "media/etc/id.pdf"},
		{"a/b", "noext", "media/a-b/id"},
	}
	for _, tt := range tests {
		if got := ObjectKey(tt.folder, tt.name, "id"); got != tt.want {
			t.Errorf("ObjectKey(%q, %q) = %q, want %q", tt.folder, tt.name, got, tt.want)
		}
	}
}

func TestMockUpload(t *testing.T) {
	m := NewMock()

	got, err := m.Upload(context.Background(), Object{Name: "logo.png", Folder: "brand", Body: strings.NewReader("x")})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if got.URL != "/uploads/brand/logo.png" || got.Key != "" {
		t.Errorf("got %+v", got)
	}

	got, _ = m.Upload(context.Background(), Object{Name: "../secret.txt"})
	if got.URL != "/uploads/secret.txt" {
		t.Errorf("path traversal not stripped: %q", got.URL)
	}

	if m.Kind() != KindMock {
		t.Errorf("kind: %q", m.Kind())
	}
}

func TestNewS3Unconfigured(t *testing.T) {
	c, err := NewS3(S3Config{Bucket: "b"})
	if c != nil || err != nil {
		t.Errorf("NewS3(empty) = %v, %v; want nil, nil", c, err)
	}
	if _, err := NewS3(S3Config{Endpoint: "http://x", AccessKey: "a", SecretKey: "s"}); err == nil {
		t.Error("expected error without bucket")
	}
}

// fakeS3 records the requests an S3 client sends.
type fakeS3 struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	if r.Method == http.MethodPut {
		f.bodies[r.URL.Path] = body
	}
	f.mu.Unlock()

	if r.Method == http.MethodDelete {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func TestS3UploadAndDelete(t *testing.T) {
	fake := &fakeS3{bodies: map[string][]byte{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	c, err := NewS3(S3Config{
		Endpoint: srv.URL, Region: "fsn1", AccessKey: "key", SecretKey: "secret",
		Bucket: "sitecms-media", PublicURL: "https://cdn.example.com/",
	})
	if err != nil {
		t.Fatalf("NewS3: %v", err)
	}
	c.newID = func() string { return "fixed" }

	payload := []byte("webp-bytes")
	got, err := c.Upload(context.Background(), Object{
		Name: "Photo.WEBP", Folder: "gallery", ContentType: "image/webp",
		Size: int64(len(payload)), Body: bytes.NewReader(payload),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if got.Key != "media/gallery/fixed.webp" {
		t.Errorf("key: got %q", got.Key)
	}
	if got.URL != "https://cdn.example.com/media/gallery/fixed.webp" {
		t.Errorf("url: got %q", got.URL)
	}

	if err := c.Delete(context.Background(), got.Key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Delete(context.Background(), ""); err != nil {
		t.Fatalf("Delete(empty): %v", err)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	want := []string{
		"PUT /sitecms-media/media/gallery/fixed.webp",
		"DELETE /sitecms-media/media/gallery/fixed.webp",
	}
	if len(fake.requests) != len(want) {
		t.Fatalf("requests: got %v, want %v", fake.requests, want)
	}
	for i := range want {
		if fake.requests[i] != want[i] {
			t.Errorf("request %d: got %q, want %q", i, fake.requests[i], want[i])
		}
	}
}

func TestS3FileURLWithoutPublicURL(t *testing.T) {
	c, _ := NewS3(S3Config{Endpoint: "https://fsn1.example.com/", AccessKey: "a", SecretKey: "s", Bucket: "b"})
	if got := c.FileURL("media/x.png"); got != "https://fsn1.example.com/b/media/x.png" {
		t.Errorf("FileURL = %q", got)
	}
}
