// Package storage persists project data in a single SQLite file:
// source documents, raw RIS tag rows, and the per-document attribute
// slots mirrored from linked references.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Source documents
		CREATE TABLE IF NOT EXISTS source (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			fulltext TEXT,
			risid INTEGER,
			memo TEXT,
			date TEXT
		);

		-- Raw RIS tag/value rows, one row per (reference, tag)
		CREATE TABLE IF NOT EXISTS ris (
			risid INTEGER NOT NULL,
			tag TEXT NOT NULL,
			value TEXT,
			PRIMARY KEY (risid, tag)
		);

		-- Named attribute slots per document (Ref_* slots live here)
		CREATE TABLE IF NOT EXISTS attribute (
			id INTEGER NOT NULL,
			name TEXT NOT NULL,
			value TEXT,
			PRIMARY KEY (id, name)
		);

		CREATE INDEX IF NOT EXISTS idx_source_risid ON source(risid);
	`
	_, err := db.Exec(schema)
	return err
}

// inTx runs fn inside a transaction, committing on success and rolling
// back on error.
func (d *DB) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// now returns the timestamp format stored in date columns.
func now() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
