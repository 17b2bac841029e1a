// Package sqlite implements the client's local persistent store on embedded
// SQLite: cached articles, liked markers, cached comment lists and the
// durable queue of pending offline actions. The page context and the sync
// worker context may open the same database file concurrently; WAL mode and
// a busy timeout serialize conflicting access.
package sqlite

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"newsreader/internal/domain"
)

// schemaVersion tracks the additive migration level via PRAGMA user_version.
// Version 1 introduced articles and liked_articles, version 2 added comments
// and offline_actions. Upgrades never drop or rewrite existing partitions.
const schemaVersion = 2

const schemaV1 = `
CREATE TABLE IF NOT EXISTS articles (
    id           TEXT PRIMARY KEY,
    title        TEXT NOT NULL,
    excerpt      TEXT NOT NULL DEFAULT '',
    content      TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL DEFAULT '',
    author       TEXT NOT NULL DEFAULT '',
    publish_time TEXT NOT NULL DEFAULT '',
    read_time    TEXT NOT NULL DEFAULT '',
    views        INTEGER NOT NULL DEFAULT 0,
    likes        INTEGER NOT NULL DEFAULT 0,
    image        TEXT NOT NULL DEFAULT '',
    featured     INTEGER NOT NULL DEFAULT 0,
    comments     TEXT NOT NULL DEFAULT '[]',
    cached_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS liked_articles (
    article_id TEXT PRIMARY KEY,
    liked_at   TIMESTAMP NOT NULL
);
`

const schemaV2 = `
CREATE TABLE IF NOT EXISTS comments (
    article_id   TEXT NOT NULL,
    position     INTEGER NOT NULL,
    comment_id   TEXT NOT NULL DEFAULT '',
    body         TEXT NOT NULL,
    created_at   TIMESTAMP NOT NULL,
    refreshed_at TIMESTAMP NOT NULL,
    PRIMARY KEY (article_id, position)
);

CREATE TABLE IF NOT EXISTS offline_actions (
    seq             INTEGER PRIMARY KEY AUTOINCREMENT,
    url             TEXT NOT NULL,
    method          TEXT NOT NULL,
    headers         TEXT NOT NULL DEFAULT '{}',
    body            BLOB,
    idempotency_key TEXT NOT NULL DEFAULT '',
    enqueued_at     TIMESTAMP NOT NULL
);
`

// Open connects to the database file, creating it if absent, and brings the
// schema up to the current version. Safe to call repeatedly and from
// multiple processes; partitions created by earlier versions are preserved.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies any missing schema steps. Idempotent.
func Migrate(db *sqlx.DB) error {
	var version int
	if err := db.Get(&version, "PRAGMA user_version"); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported %d", version, schemaVersion)
	}

	if version < 1 {
		if _, err := db.Exec(schemaV1); err != nil {
			return fmt.Errorf("apply schema v1: %w", err)
		}
	}
	if version < 2 {
		if _, err := db.Exec(schemaV2); err != nil {
			return fmt.Errorf("apply schema v2: %w", err)
		}
	}

	if version < schemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
	}

	return nil
}

// storageErr wraps driver failures in the store's error type. Absence of a
// row is not a failure and must be handled before calling this.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *domain.StorageError
	if errors.As(err, &se) {
		return err
	}
	return domain.NewStorageError(op, err)
}
