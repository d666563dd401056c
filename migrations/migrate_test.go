// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose fails on its first query

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "stoa.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	if err = Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// second run is a no-op
	if err = Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	if _, err = db.Exec(`INSERT INTO records (key, value, updated_at) VALUES ('k', 'v', 1)`); err != nil {
		t.Fatalf("records table is not usable: %v", err)
	}
}

func TestMigrate_RecordKeysAreUnique(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "stoa.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	if err = Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	const insert = `INSERT INTO records (key, value) VALUES ('salt', '{}')`
	if _, err = db.Exec(insert); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err = db.Exec(insert); err == nil {
		t.Fatal("expected a primary key violation for a duplicate record key")
	}

	var updatedAt int64
	if err = db.QueryRow(`SELECT updated_at FROM records WHERE key = 'salt'`).Scan(&updatedAt); err != nil {
		t.Fatalf("select: %v", err)
	}
	if updatedAt != 0 {
		t.Errorf("updated_at default = %d, want 0", updatedAt)
	}
}
