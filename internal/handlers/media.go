// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sitecms/internal/imaging"
	"sitecms/internal/models"
	"sitecms/internal/respond"
	"sitecms/internal/storage"
	"sitecms/internal/store"
	"sitecms/internal/validate"
)

const (
	// multipartOverhead is allowed on top of the upload limit for the form
	// fields and part headers.
	multipartOverhead = 64 << 10

	// multipartMemory is how much of a form is held in memory before parts
	// spill to temporary files.
	multipartMemory = 8 << 20

	msgNoFile = "No file provided"
)

// ListMedia returns one window of media files, most recent first.
func (a *API) ListMedia(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pageParams(r, store.DefaultMediaLimit)
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}
	q := r.URL.Query()
	mediaType := models.MediaType(q.Get("type"))
	if msg := validateMediaFilter(mediaType); msg != "" {
		respond.Error(w, http.StatusBadRequest, msg)
		return
	}

	files, pg, err := a.store.ListMedia(r.Context(), models.MediaFilter{
		Type:   mediaType,
		Search: strings.TrimSpace(q.Get("search")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		a.fail(w, r, err, "fetch media files")
		return
	}
	respond.List(w, files, pg)
}

// UploadMedia accepts a multipart form with a "file" part and optional
// "alt", "caption" and "folder" fields. Size and type are checked before
// anything is written.
func (a *API) UploadMedia(w http.ResponseWriter, r *http.Request) {
	limits := validate.Limits{MaxSize: a.cfg.UploadMaxSize, AllowedTypes: a.cfg.AllowedTypes}

	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.UploadMaxSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			respond.Error(w, http.StatusBadRequest, validate.FileUpload(validate.Upload{Size: a.cfg.UploadMaxSize + 1}, limits))
			return
		}
		respond.Error(w, http.StatusBadRequest, msgNoFile)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, msgNoFile)
		return
	}
	defer file.Close()

	if header.Size == 0 {
		respond.Error(w, http.StatusBadRequest, "File is empty")
		return
	}

	mimeType, err := contentType(file, header)
	if err != nil {
		a.fail(w, r, err, "upload file")
		return
	}
	if msg := validate.FileUpload(validate.Upload{Size: header.Size, MimeType: mimeType}, limits); msg != "" {
		respond.Error(w, http.StatusBadRequest, msg)
		return
	}

	dims := a.probe(file, header.Filename, mimeType)
	folder := r.FormValue("folder")

	stored, err := a.uploads.Upload(r.Context(), storage.Object{
		Name:        header.Filename,
		Folder:      folder,
		ContentType: mimeType,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		a.fail(w, r, err, "upload file")
		return
	}

	m, err := a.store.CreateMedia(r.Context(), models.NewMedia{
		Name:       header.Filename,
		MimeType:   mimeType,
		Size:       header.Size,
		URL:        stored.URL,
		StorageKey: stored.Key,
		Dimensions: dims,
		Alt:        r.FormValue("alt"),
		Caption:    r.FormValue("caption"),
		Folder:     folder,
	})
	if err != nil {
		a.removeObject(r, stored.Key)
		a.fail(w, r, err, "upload file")
		return
	}

	a.log.Info("media uploaded",
		zap.String("id", m.ID),
		zap.String("name", m.Name),
		zap.Int64("size", m.Size),
		zap.String("storage", a.uploads.Kind()),
	)
	respond.OK(w, http.StatusCreated, m, "File uploaded successfully")
}

// GetMedia returns one media file with its usage list.
func (a *API) GetMedia(w http.ResponseWriter, r *http.Request) {
	m, err := a.store.GetMedia(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err, "fetch media file")
		return
	}
	respond.OK(w, http.StatusOK, m, "")
}

// DeleteMedia removes a media file that no page uses, then its stored object.
func (a *API) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	m, err := a.store.DeleteMedia(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err, "delete media file")
		return
	}
	a.removeObject(r, m.StorageKey)
	respond.OK(w, http.StatusOK, m, "Media file deleted successfully")
}

// removeObject deletes a stored object, logging instead of failing.
func (a *API) removeObject(r *http.Request, key string) {
	if key == "" {
		return
	}
	if err := a.uploads.Delete(r.Context(), key); err != nil {
		a.log.Warn("media object delete failed", zap.String("key", key), zap.Error(err))
	}
}

// contentType returns the declared part type, sniffing the first 512 bytes
// when the client sent none. Parameters such as charset are dropped.
func contentType(file multipart.File, header *multipart.FileHeader) (string, error) {
	ct := header.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		buf := make([]byte, 512)
		n, err := file.Read(buf)
		if err != nil && err != io.EOF {
			return "", err
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return "", err
		}
		ct = http.DetectContentType(buf[:n])
	}
	if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
		return mediaType, nil
	}
	return ct, nil
}

// probe reads the real dimensions of a raster image and rewinds the file.
// It returns nil when the type has none or decoding fails, leaving the store
// to synthesize them.
func (a *API) probe(file multipart.File, name, mimeType string) *models.Dimensions {
	if !strings.HasPrefix(mimeType, "image/") || mimeType == "image/svg+xml" {
		return nil
	}
	dims, _, err := imaging.Probe(file)
	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		a.log.Warn("rewind upload failed", zap.String("name", name), zap.Error(seekErr))
	}
	if err != nil {
		a.log.Debug("image probe failed", zap.String("name", name), zap.Error(err))
		return nil
	}
	return dims
}
