// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Local SQLite schema and queries for the client session database. The
// session table is constrained to a single row (id = 1); writing a new
// session replaces the old one.
const (
	localSchema = `
		CREATE TABLE IF NOT EXISTS session (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			user_id  INTEGER NOT NULL,
			login    TEXT    NOT NULL,
			token    TEXT    NOT NULL,
			saved_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS preferences (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`

	localSaveSession = `
		INSERT OR REPLACE INTO session (id, user_id, login, token, saved_at)
		VALUES (1, $1, $2, $3, $4);`

	localGetSession = `
		SELECT user_id, login, token, saved_at
		FROM session
		WHERE id = 1;`

	localUpdateToken = `
		UPDATE session
		SET token = $1, saved_at = $2
		WHERE id = 1;`

	localClearSession = `
		DELETE FROM session
		WHERE id = 1;`

	localSavePreference = `
		INSERT OR REPLACE INTO preferences (key, value)
		VALUES ($1, $2);`

	localGetPreference = `
		SELECT value
		FROM preferences
		WHERE key = $1;`
)
