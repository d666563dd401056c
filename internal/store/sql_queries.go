// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const recordsTable = "records"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetRecordQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(recordsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertRecordQuery(key, value string, updatedAt int64) (string, []any, error) {
	return sqlite.
		Insert(recordsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

// buildCreateRecordQuery inserts only when the key is free; zero affected
// rows means the record already existed.
func buildCreateRecordQuery(key, value string, updatedAt int64) (string, []any, error) {
	return sqlite.
		Insert(recordsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(key) DO NOTHING").
		ToSql()
}

func buildExportRecordsQuery() (string, []any, error) {
	return sqlite.
		Select("key", "value").
		From(recordsTable).
		OrderBy("key").
		ToSql()
}
