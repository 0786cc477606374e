// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"net/http"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionCookiesTable = "session_cookies"
	sessionProfileTable = "session_profile"
)

// sqlite uses "?" placeholders, which is squirrel's default.
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildDeleteCookiesQuery(baseURL string) (string, []any, error) {
	return sqliteBuilder.Delete(sessionCookiesTable).
		Where(sq.Eq{"base_url": baseURL}).
		ToSql()
}

func buildInsertCookiesQuery(baseURL string, cookies []*http.Cookie, savedAt time.Time) (string, []any, error) {
	q := sqliteBuilder.Insert(sessionCookiesTable).
		Columns("base_url", "name", "value", "saved_at")
	for _, c := range cookies {
		q = q.Values(baseURL, c.Name, c.Value, savedAt)
	}
	return q.ToSql()
}

func buildSelectCookiesQuery(baseURL string) (string, []any, error) {
	return sqliteBuilder.Select("name", "value").
		From(sessionCookiesTable).
		Where(sq.Eq{"base_url": baseURL}).
		OrderBy("name").
		ToSql()
}

func buildUpsertLastEmailQuery(baseURL, email string, updatedAt time.Time) (string, []any, error) {
	return sqliteBuilder.Insert(sessionProfileTable).
		Columns("base_url", "last_email", "updated_at").
		Values(baseURL, email, updatedAt).
		Suffix("ON CONFLICT(base_url) DO UPDATE SET last_email = excluded.last_email, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectLastEmailQuery(baseURL string) (string, []any, error) {
	return sqliteBuilder.Select("last_email").
		From(sessionProfileTable).
		Where(sq.Eq{"base_url": baseURL}).
		ToSql()
}
