// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sitecms/internal/store"
)

func TestSeedSkipsPopulatedDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM pages`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	require.NoError(t, Seed(context.Background(), db, store.DefaultSnapshot(), zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedInsertsSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	snap := store.DefaultSnapshot()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM pages`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	for _, p := range snap.Pages {
		mock.ExpectExec(`INSERT INTO pages`).
			WithArgs(p.ID, sqlmock.AnyArg(), p.Slug, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	// Oldest media first so sequence order matches newest-first listing.
	for i := len(snap.Media) - 1; i >= 0; i-- {
		mock.ExpectExec(`INSERT INTO media_files`).
			WithArgs(snap.Media[i].ID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec(`INSERT INTO website_settings`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, Seed(context.Background(), db, snap, zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(context.Background(), testDSN(), zap.NewNop())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, zap.NewNop()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := Seed(context.Background(), db, store.DefaultSnapshot(), zap.NewNop()); err != nil {
			t.Fatalf("Seed: %v", err)
		}
	}
}
