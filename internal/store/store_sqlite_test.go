// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/stoa-vault/internal/logger"
)

func newMockStore(t *testing.T) (*sqliteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &sqliteStore{
		DB:  &DB{DB: db, logger: logger.Nop()},
		now: func() time.Time { return time.UnixMilli(1700000000000) },
	}, mock
}

func TestSQLiteStore_Get(t *testing.T) {
	query := regexp.QuoteMeta("SELECT value FROM records WHERE key = ?")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    string
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(KeyNotes).
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("[]"))
			},
			want: "[]",
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(KeyNotes).WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(KeyNotes).WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockStore(t)
			tt.setup(mock)

			got, err := s.Get(testContext(), KeyNotes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLiteStore_Set(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO records (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key) DO UPDATE")).
		WithArgs(KeySettings, `{}`, int64(1700000000000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(testContext(), KeySettings, `{}`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SetError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO records").WillReturnError(errors.New("readonly database"))

	err := s.Set(testContext(), KeySettings, `{}`)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteStore_Create(t *testing.T) {
	t.Run("inserted", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT(key) DO NOTHING")).
			WithArgs(KeySalt, "v", int64(1700000000000)).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, s.Create(testContext(), KeySalt, "v"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already exists", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT(key) DO NOTHING")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Create(testContext(), KeySalt, "v")
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestSQLiteStore_ExportScanError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, value FROM records ORDER BY key")).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow(KeyNotes, "[]").
			RowError(0, errors.New("row broken")))

	_, err := s.Export(testContext())
	assert.ErrorIs(t, err, ErrScanningRows)
}
