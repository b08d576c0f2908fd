// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging probes the pixel dimensions of uploaded images. Only the
// image header is decoded, so probing a large upload stays cheap.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"sitecms/internal/models"
)

// ErrUnsupported is returned when the data is not a decodable raster image.
var ErrUnsupported = errors.New("imaging: unsupported image format")

// Probe reads the image header from r and returns its dimensions together
// with the detected format name (e.g. "png", "webp").
func Probe(r io.Reader) (*models.Dimensions, string, error) {
	cfg, format, err := image.DecodeConfig(r)
	if errors.Is(err, image.ErrFormat) {
		return nil, "", ErrUnsupported
	}
	if err != nil {
		return nil, "", fmt.Errorf("imaging: decode config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, format, fmt.Errorf("imaging: invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	return &models.Dimensions{Width: cfg.Width, Height: cfg.Height}, format, nil
}

// ProbeBytes is Probe over an in-memory buffer.
func ProbeBytes(data []byte) (*models.Dimensions, string, error) {
	return Probe(bytes.NewReader(data))
}
