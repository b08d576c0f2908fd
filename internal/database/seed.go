// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"sitecms/internal/models"
	"sitecms/internal/store"
)

// Seed loads snap into empty content tables. A database that already holds
// pages is left untouched, so Seed is safe to call on every start.
func Seed(ctx context.Context, db *sql.DB, snap store.Snapshot, log *zap.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&count); err != nil {
		return fmt.Errorf("seed check pages: %w", err)
	}
	if count > 0 {
		log.Info("database already seeded, skipping", zap.Int("pages", count))
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	for i := range snap.Pages {
		if err := insertPage(ctx, tx, &snap.Pages[i]); err != nil {
			return err
		}
	}

	// Media are listed newest first by sequence, so the snapshot (already
	// newest first) goes in back to front.
	for i := len(snap.Media) - 1; i >= 0; i-- {
		if err := insertMedia(ctx, tx, &snap.Media[i]); err != nil {
			return err
		}
	}

	settings, err := json.Marshal(snap.Settings)
	if err != nil {
		return fmt.Errorf("seed encode settings: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO website_settings (id, data) VALUES (1, $1)
		ON CONFLICT (id) DO NOTHING`, string(settings)); err != nil {
		return fmt.Errorf("seed insert settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	log.Info("database seeded",
		zap.Int("pages", len(snap.Pages)),
		zap.Int("media", len(snap.Media)),
	)
	return nil
}

func insertPage(ctx context.Context, tx *sql.Tx, p *models.Page) error {
	sections, err := json.Marshal(p.Sections)
	if err != nil {
		return fmt.Errorf("seed encode sections of %s: %w", p.ID, err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO pages (id, title, slug, status, meta_title, meta_description, meta_keywords,
		                   sections, author, views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Title, p.Slug, string(p.Status), p.MetaTitle, p.MetaDescription, p.MetaKeywords,
		string(sections), p.Author, p.Views, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("seed insert page %s: %w", p.ID, err)
	}
	return nil
}

func insertMedia(ctx context.Context, tx *sql.Tx, m *models.MediaFile) error {
	usedIn, err := json.Marshal(m.UsedIn)
	if err != nil {
		return fmt.Errorf("seed encode used_in of %s: %w", m.ID, err)
	}
	var width, height sql.NullInt64
	if m.Dimensions != nil {
		width = sql.NullInt64{Int64: int64(m.Dimensions.Width), Valid: true}
		height = sql.NullInt64{Int64: int64(m.Dimensions.Height), Valid: true}
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO media_files (id, name, type, url, size, width, height, alt, caption,
		                         storage_key, used_in, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.ID, m.Name, string(m.Type), m.URL, m.Size, width, height, m.Alt, m.Caption,
		m.StorageKey, string(usedIn), m.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("seed insert media %s: %w", m.ID, err)
	}
	return nil
}
