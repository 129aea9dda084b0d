// Package store provides read-only access to the editor's SQLite state
// database (state.vscdb).
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ItemTable is the single key/value table the editor keeps its global state in.
const ItemTable = "ItemTable"

// DB wraps a read-only sql.DB connection to a state database.
type DB struct {
	conn *sql.DB
}

// OpenReadOnly opens the SQLite database at dbPath without write access.
// The file is never created; a missing file surfaces as an error on the
// first query.
func OpenReadOnly(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", readOnlyDSN(dbPath))
	if err != nil {
		return nil, err
	}
	// One query per open; a single connection keeps the file handle count at one.
	conn.SetMaxOpenConns(1)
	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Item returns the raw value stored under key. The boolean is false when
// no row exists.
func (db *DB) Item(key string) ([]byte, bool, error) {
	var value []byte
	row := db.conn.QueryRow("SELECT value FROM "+ItemTable+" WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("querying %s for %q: %w", ItemTable, key, err)
	}
	return value, true, nil
}

// ReadItem opens dbPath read-only, reads one key and closes the database
// again on every return path.
func ReadItem(dbPath, key string) (value []byte, ok bool, err error) {
	db, err := OpenReadOnly(dbPath)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return db.Item(key)
}

// readOnlyDSN builds a SQLite URI filename with mode=ro. Characters that
// terminate or escape a URI path are percent-encoded.
func readOnlyDSN(dbPath string) string {
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	p := filepath.ToSlash(dbPath)
	if !strings.HasPrefix(p, "/") {
		// Drive-letter paths need an empty authority: file:///C:/...
		p = "/" + p
	}
	r := strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")
	return "file://" + r.Replace(p) + "?mode=ro"
}
