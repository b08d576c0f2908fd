// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"sitecms/internal/models"
)

// uploadPart describes the file part of a multipart upload.
type uploadPart struct {
	name        string
	contentType string
	body        []byte
}

// uploadRequest builds a multipart request. A nil file omits the part.
func uploadRequest(t *testing.T, file *uploadPart, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+file.name+`"`)
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(file.body); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/website/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func TestUploadImage(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	req := uploadRequest(t,
		&uploadPart{name: "pixel.png", contentType: "image/png", body: pngBytes(t, 64, 48)},
		map[string]string{"alt": "A pixel", "caption": "Tiny", "folder": "Gallery Photos"},
	)

	rr := env.serve(req)
	expectStatus(t, rr, http.StatusCreated)
	resp := decodeEnvelope(t, rr)
	if resp.Message != "File uploaded successfully" {
		t.Errorf("message: %q", resp.Message)
	}
	var m models.MediaFile
	decodeData(t, resp, &m)
	if m.Type != models.MediaImage || m.Alt != "A pixel" || m.Caption != "Tiny" {
		t.Errorf("media: %+v", m)
	}
	if m.URL != "/uploads/gallery-photos/pixel.png" {
		t.Errorf("url: %q", m.URL)
	}
	if m.Dimensions == nil || *m.Dimensions != (models.Dimensions{Width: 64, Height: 48}) {
		t.Errorf("dimensions should be probed from the file: %+v", m.Dimensions)
	}
	if len(m.UsedIn) != 0 {
		t.Errorf("usedIn: %v", m.UsedIn)
	}

	// The upload is listed first.
	rr = env.do(t, http.MethodGet, "/api/website/media?limit=1", "")
	expectStatus(t, rr, http.StatusOK)
	var list []models.MediaFile
	decodeData(t, decodeEnvelope(t, rr), &list)
	if len(list) != 1 || list[0].ID != m.ID {
		t.Errorf("newest first: %+v", list)
	}
}

func TestUploadLimits(t *testing.T) {
	tests := []struct {
		name   string
		file   *uploadPart
		status int
		want   string
	}{
		{"exactly max size", &uploadPart{"notes.txt", "text/plain", bytes.Repeat([]byte("a"), 1024)}, http.StatusCreated, "File uploaded successfully"},
		{"one byte over", &uploadPart{"notes.txt", "text/plain", bytes.Repeat([]byte("a"), 1025)}, http.StatusBadRequest, "File size exceeds maximum allowed size of 1 KB"},
		{"type not allowed", &uploadPart{"archive.zip", "application/zip", []byte("PK")}, http.StatusBadRequest, "File type application/zip is not allowed"},
		{"no file", nil, http.StatusBadRequest, "No file provided"},
		{"empty file", &uploadPart{"empty.txt", "text/plain", nil}, http.StatusBadRequest, "File is empty"},
		{"sniffed type", &uploadPart{"pixel.png", "", pngBytes(t, 2, 2)}, http.StatusCreated, "File uploaded successfully"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testConfig(), nil)
			rr := env.serve(uploadRequest(t, tt.file, nil))
			expectStatus(t, rr, tt.status)
			if msg := decodeEnvelope(t, rr).Message; !strings.Contains(msg, tt.want) {
				t.Errorf("message: got %q, want it to contain %q", msg, tt.want)
			}
		})
	}
}

func TestUploadTooLargeForm(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	big := bytes.Repeat([]byte("a"), 1024+multipartOverhead+1)
	rr := env.serve(uploadRequest(t, &uploadPart{"big.txt", "text/plain", big}, nil))
	expectStatus(t, rr, http.StatusBadRequest)
	if msg := decodeEnvelope(t, rr).Message; !strings.HasPrefix(msg, "File size exceeds") {
		t.Errorf("message: %q", msg)
	}
}

func TestDeleteMedia(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	rr := env.do(t, http.MethodDelete, "/api/website/media/logo-light", "")
	expectStatus(t, rr, http.StatusBadRequest)
	msg := decodeEnvelope(t, rr).Message
	if !strings.HasPrefix(msg, "Cannot delete media file. It is currently used in: ") || !strings.Contains(msg, "landing") {
		t.Errorf("in-use message: %q", msg)
	}

	rr = env.do(t, http.MethodDelete, "/api/website/media/nope", "")
	expectStatus(t, rr, http.StatusNotFound)

	rr = env.serve(uploadRequest(t, &uploadPart{"doc.pdf", "application/pdf", []byte("%PDF-1.4")}, map[string]string{"folder": "docs"}))
	expectStatus(t, rr, http.StatusCreated)
	var m models.MediaFile
	decodeData(t, decodeEnvelope(t, rr), &m)
	if m.Dimensions != nil {
		t.Errorf("documents have no dimensions: %+v", m.Dimensions)
	}

	rr = env.do(t, http.MethodDelete, "/api/website/media/"+m.ID, "")
	expectStatus(t, rr, http.StatusOK)
	if got := decodeEnvelope(t, rr).Message; got != "Media file deleted successfully" {
		t.Errorf("message: %q", got)
	}
	if len(env.uploads.deleted) != 1 || env.uploads.deleted[0] != "media/docs/obj.pdf" {
		t.Errorf("stored object not removed: %v", env.uploads.deleted)
	}
}

func TestGetMedia(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	rr := env.do(t, http.MethodGet, "/api/website/media/logo-light", "")
	expectStatus(t, rr, http.StatusOK)
	var m models.MediaFile
	decodeData(t, decodeEnvelope(t, rr), &m)
	if m.ID != "logo-light" || len(m.UsedIn) == 0 {
		t.Errorf("media file: %+v", m)
	}

	rr = env.do(t, http.MethodGet, "/api/website/media/nope", "")
	expectStatus(t, rr, http.StatusNotFound)
}

func TestListMediaFilters(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	rr := env.do(t, http.MethodGet, "/api/website/media?type=document", "")
	expectStatus(t, rr, http.StatusOK)
	resp := decodeEnvelope(t, rr)
	var list []models.MediaFile
	decodeData(t, resp, &list)
	if len(list) != 1 || list[0].ID != "academy-brochure" {
		t.Errorf("document filter: %+v", list)
	}
	if resp.Pagination.Limit != 20 {
		t.Errorf("default media limit: %d", resp.Pagination.Limit)
	}

	rr = env.do(t, http.MethodGet, "/api/website/media?search=LOGO", "")
	expectStatus(t, rr, http.StatusOK)
	decodeData(t, decodeEnvelope(t, rr), &list)
	if len(list) != 2 {
		t.Errorf("search: got %d files, want 2", len(list))
	}

	rr = env.do(t, http.MethodGet, "/api/website/media?type=audio", "")
	expectStatus(t, rr, http.StatusBadRequest)
}
