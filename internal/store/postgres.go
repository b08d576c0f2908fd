// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"sitecms/internal/models"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// pageColumns is the canonical column list for page queries.
const pageColumns = `id, title, slug, status, meta_title, meta_description, meta_keywords,
	sections, author, views, created_at, updated_at`

// mediaColumns is the canonical column list for media queries.
const mediaColumns = `id, name, type, url, size, width, height, alt, caption,
	storage_key, used_in, uploaded_at`

// PostgresStore implements Store on PostgreSQL. Every multi-step write runs
// in a transaction that locks the affected row, and the slug column carries a
// unique constraint as the last line of the uniqueness invariant.
type PostgresStore struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

// NewPostgresStore creates a PostgresStore with the given database connection.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now, newID: uuid.NewString}
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type scanner interface {
	Scan(dest ...any) error
}

func scanPage(sc scanner) (*models.Page, error) {
	var (
		p        models.Page
		sections []byte
	)
	if err := sc.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Status, &p.MetaTitle, &p.MetaDescription, &p.MetaKeywords,
		&sections, &p.Author, &p.Views, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sections, &p.Sections); err != nil {
		return nil, fmt.Errorf("decode sections of page %s: %w", p.ID, err)
	}
	if p.Sections == nil {
		p.Sections = []models.Section{}
	}
	return &p, nil
}

func scanMedia(sc scanner) (*models.MediaFile, error) {
	var (
		m             models.MediaFile
		width, height sql.NullInt64
		usedIn        []byte
	)
	if err := sc.Scan(
		&m.ID, &m.Name, &m.Type, &m.URL, &m.Size, &width, &height, &m.Alt, &m.Caption,
		&m.StorageKey, &usedIn, &m.UploadedAt,
	); err != nil {
		return nil, err
	}
	if width.Valid && height.Valid {
		m.Dimensions = &models.Dimensions{Width: int(width.Int64), Height: int(height.Int64)}
	}
	if err := json.Unmarshal(usedIn, &m.UsedIn); err != nil {
		return nil, fmt.Errorf("decode used_in of media %s: %w", m.ID, err)
	}
	if m.UsedIn == nil {
		m.UsedIn = []string{}
	}
	return &m, nil
}

// likePattern wraps a search term for ILIKE, escaping wildcard characters.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *whereBuilder) add(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// ListPages returns one window of the pages matching f, in insertion order.
func (s *PostgresStore) ListPages(ctx context.Context, f models.PageFilter) ([]models.Page, models.Pagination, error) {
	if err := checkPagination(f.Page, f.Limit); err != nil {
		return nil, models.Pagination{}, err
	}

	var w whereBuilder
	if f.Status != "" {
		w.add("status = " + w.arg(string(f.Status)))
	}
	if f.Search != "" {
		p := w.arg(likePattern(f.Search))
		w.add("(title ILIKE " + p + " OR slug ILIKE " + p + " OR meta_description ILIKE " + p + ")")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("count pages: %w", err)
	}

	limitArg := w.arg(f.Limit)
	offsetArg := w.arg((f.Page - 1) * f.Limit)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+pageColumns+` FROM pages`+w.String()+
			` ORDER BY seq LIMIT `+limitArg+` OFFSET `+offsetArg,
		w.args...)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	items := []models.Page{}
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, models.Pagination{}, fmt.Errorf("scan page: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list pages: %w", err)
	}
	return items, models.NewPagination(f.Page, f.Limit, total), nil
}

// GetPage looks a page up by id first, then by slug.
func (s *PostgresStore) GetPage(ctx context.Context, idOrSlug string) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM pages
		WHERE id = $1 OR slug = $1
		ORDER BY (id = $1) DESC
		LIMIT 1`, idOrSlug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(msgPageNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	return p, nil
}

// CreatePage validates the input, enforces slug uniqueness and stores a new
// page with empty sections.
func (s *PostgresStore) CreatePage(ctx context.Context, in models.NewPage) (*models.Page, error) {
	if err := checkNewPage(&in); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create page begin: %w", err)
	}
	defer tx.Rollback()

	taken, err := slugExists(ctx, tx, in.Slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict("slug", msgSlugTaken)
	}

	now := s.now().UTC()
	p, err := scanPage(tx.QueryRowContext(ctx, `
		INSERT INTO pages (id, title, slug, status, meta_title, meta_description, meta_keywords,
		                   sections, author, views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, '[]'::jsonb, $8, 0, $9, $9)
		RETURNING `+pageColumns,
		s.newID(), in.Title, in.Slug, string(in.Status),
		in.MetaTitle, in.MetaDescription, in.MetaKeywords, in.Author, now,
	))
	if isUniqueViolation(err) {
		return nil, conflict("slug", msgSlugTaken)
	}
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return nil, conflict("slug", msgSlugTaken)
		}
		return nil, fmt.Errorf("create page commit: %w", err)
	}
	return p, nil
}

// UpdatePage merges patch into the page with the given id.
func (s *PostgresStore) UpdatePage(ctx context.Context, id string, patch models.PagePatch) (*models.Page, string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", fmt.Errorf("update page begin: %w", err)
	}
	defer tx.Rollback()

	cur, err := lockPage(ctx, tx, id)
	if err != nil {
		return nil, "", err
	}

	next, slugChanged, err := applyPagePatch(cur, patch)
	if err != nil {
		return nil, "", err
	}
	if slugChanged {
		taken, err := slugExists(ctx, tx, next.Slug, id)
		if err != nil {
			return nil, "", err
		}
		if taken {
			return nil, "", conflict("slug", msgSlugTaken)
		}
	}

	sections, err := json.Marshal(next.Sections)
	if err != nil {
		return nil, "", fmt.Errorf("encode sections: %w", err)
	}
	next.UpdatedAt = s.now().UTC()

	_, err = tx.ExecContext(ctx, `
		UPDATE pages
		SET title = $2, slug = $3, status = $4, meta_title = $5, meta_description = $6,
		    meta_keywords = $7, sections = $8, updated_at = $9
		WHERE id = $1`,
		id, next.Title, next.Slug, string(next.Status), next.MetaTitle, next.MetaDescription,
		next.MetaKeywords, string(sections), next.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return nil, "", conflict("slug", msgSlugTaken)
	}
	if err != nil {
		return nil, "", fmt.Errorf("update page: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("update page commit: %w", err)
	}
	return next, cur.Slug, nil
}

// DeletePage removes a page unless it is the landing page. References to the
// page are dropped from every media file's usage list.
func (s *PostgresStore) DeletePage(ctx context.Context, id string) (*models.Page, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("delete page begin: %w", err)
	}
	defer tx.Rollback()

	p, err := lockPage(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if p.IsLanding() {
		return nil, forbidden(msgLandingDelete)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM pages WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete page: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE media_files SET used_in = used_in - $1::text
		WHERE used_in @> jsonb_build_array($1::text)`, id); err != nil {
		return nil, fmt.Errorf("delete page references: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("delete page commit: %w", err)
	}
	return p, nil
}

// IncrementViews bumps the view counter of a page.
func (s *PostgresStore) IncrementViews(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE pages SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if n == 0 {
		return notFound(msgPageNotFound)
	}
	return nil
}

func lockPage(ctx context.Context, tx *sql.Tx, id string) (*models.Page, error) {
	p, err := scanPage(tx.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(msgPageNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lock page: %w", err)
	}
	return p, nil
}

func slugExists(ctx context.Context, tx *sql.Tx, slug, exceptID string) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM pages WHERE slug = $1 AND id <> $2)`, slug, exceptID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// ListMedia returns one window of the media matching f, most recent first.
func (s *PostgresStore) ListMedia(ctx context.Context, f models.MediaFilter) ([]models.MediaFile, models.Pagination, error) {
	if err := checkPagination(f.Page, f.Limit); err != nil {
		return nil, models.Pagination{}, err
	}

	var w whereBuilder
	if f.Type != "" {
		w.add("type = " + w.arg(string(f.Type)))
	}
	if f.Search != "" {
		p := w.arg(likePattern(f.Search))
		w.add("(name ILIKE " + p + " OR alt ILIKE " + p + " OR caption ILIKE " + p + ")")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM media_files`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("count media: %w", err)
	}

	limitArg := w.arg(f.Limit)
	offsetArg := w.arg((f.Page - 1) * f.Limit)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+mediaColumns+` FROM media_files`+w.String()+
			` ORDER BY seq DESC LIMIT `+limitArg+` OFFSET `+offsetArg,
		w.args...)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	items := []models.MediaFile{}
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, models.Pagination{}, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list media: %w", err)
	}
	return items, models.NewPagination(f.Page, f.Limit, total), nil
}

// GetMedia returns a media file by id.
func (s *PostgresStore) GetMedia(ctx context.Context, id string) (*models.MediaFile, error) {
	m, err := scanMedia(s.db.QueryRowContext(ctx,
		`SELECT `+mediaColumns+` FROM media_files WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(msgMediaNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get media: %w", err)
	}
	return m, nil
}

// CreateMedia records an uploaded file.
func (s *PostgresStore) CreateMedia(ctx context.Context, in models.NewMedia) (*models.MediaFile, error) {
	if err := checkNewMedia(in); err != nil {
		return nil, err
	}

	m := newMediaFile(s.newID(), in, s.now().UTC())
	var width, height sql.NullInt64
	if m.Dimensions != nil {
		width = sql.NullInt64{Int64: int64(m.Dimensions.Width), Valid: true}
		height = sql.NullInt64{Int64: int64(m.Dimensions.Height), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO media_files (id, name, type, url, size, width, height, alt, caption,
		                         storage_key, used_in, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, '[]'::jsonb, $11)`,
		m.ID, m.Name, string(m.Type), m.URL, m.Size, width, height, m.Alt, m.Caption,
		m.StorageKey, m.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return m, nil
}

// DeleteMedia removes an unused media file.
func (s *PostgresStore) DeleteMedia(ctx context.Context, id string) (*models.MediaFile, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("delete media begin: %w", err)
	}
	defer tx.Rollback()

	m, err := scanMedia(tx.QueryRowContext(ctx,
		`SELECT `+mediaColumns+` FROM media_files WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(msgMediaNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lock media: %w", err)
	}
	if m.InUse() {
		return nil, forbidden(inUseMessage(m))
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM media_files WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete media: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("delete media commit: %w", err)
	}
	return m, nil
}

// GetSettings returns the website settings row.
func (s *PostgresStore) GetSettings(ctx context.Context) (*models.WebsiteSettings, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM website_settings WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New("get settings: settings row missing, database not seeded")
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	var ws models.WebsiteSettings
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &ws, nil
}

// UpdateSettings validates and deep-merges patch into the settings row.
func (s *PostgresStore) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (*models.WebsiteSettings, error) {
	if err := checkSettingsPatch(patch); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("update settings begin: %w", err)
	}
	defer tx.Rollback()

	var raw []byte
	if err := tx.QueryRowContext(ctx,
		`SELECT data FROM website_settings WHERE id = 1 FOR UPDATE`).Scan(&raw); err != nil {
		return nil, fmt.Errorf("lock settings: %w", err)
	}
	var cur models.WebsiteSettings
	if err := json.Unmarshal(raw, &cur); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	next := mergeSettings(cur, patch)
	encoded, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE website_settings SET data = $1, updated_at = $2 WHERE id = 1`,
		string(encoded), s.now().UTC(),
	); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update settings commit: %w", err)
	}
	return &next, nil
}

// Stats summarises the stored content in a single round trip.
func (s *PostgresStore) Stats(ctx context.Context) (models.WebsiteStats, error) {
	var st models.WebsiteStats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM pages),
			(SELECT COUNT(*) FROM pages WHERE status = 'published'),
			(SELECT COUNT(*) FROM pages WHERE status = 'draft'),
			(SELECT COALESCE(SUM(jsonb_array_length(sections)), 0) FROM pages),
			(SELECT COUNT(*) FROM media_files),
			(SELECT COALESCE(SUM(size), 0) FROM media_files),
			(SELECT COUNT(*) FROM media_files WHERE type = 'image'),
			(SELECT COUNT(*) FROM media_files WHERE type = 'video'),
			(SELECT COUNT(*) FROM media_files WHERE type = 'document')`,
	).Scan(
		&st.TotalPages, &st.PublishedPages, &st.DraftPages, &st.TotalSections,
		&st.MediaFiles, &st.TotalMediaSize, &st.ImageFiles, &st.VideoFiles, &st.DocumentFiles,
	)
	if err != nil {
		return models.WebsiteStats{}, fmt.Errorf("stats: %w", err)
	}
	return st, nil
}

var _ Store = (*PostgresStore)(nil)
