// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)

	assert.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	data, err := fs.ReadFile(embedMigrations, names[0])
	require.NoError(t, err)

	schema := string(data)
	assert.True(t, strings.HasPrefix(schema, "-- +goose Up"))
	for _, table := range []string{"users", "offers", "comments", "favorites"} {
		assert.Contains(t, schema, "CREATE TABLE "+table+" (")
	}
	assert.Contains(t, schema, "-- +goose Down")
}
