// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/stoa-vault/internal/logger"
)

// sqliteStore is the [Store] backed by the "records" table of a sqlite
// database.
type sqliteStore struct {
	*DB
	now func() time.Time
}

// NewSQLiteStore constructs a [Store] on top of an already migrated
// connection.
func NewSQLiteStore(db *DB) Store {
	return &sqliteStore{DB: db, now: time.Now}
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteStore.Get").
			Str("key", key).
			Msg("failed to read record")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRecordQuery(key, value, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteStore.Set").
			Str("key", key).
			Msg("failed to write record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStore) Create(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateRecordQuery(key, value, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteStore.Create").
			Str("key", key).
			Msg("failed to create record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, key)
	}

	return nil
}

func (s *sqliteStore) Export(ctx context.Context) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExportRecordsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteStore.Export").Msg("failed to query records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records[key] = value
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "sqliteStore.Export").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (s *sqliteStore) Close() error {
	return s.DB.Close()
}
