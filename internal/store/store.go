package store

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a sqlite-backed key-value store of gob blobs, used to
// keep game results and server sessions around between runs.
type Store struct {
	mu   sync.Mutex
	name string
	db   *sql.DB
}

var (
	ErrBadName  = fmt.Errorf("bad name for store")
	ErrNotFound = fmt.Errorf("value not found")
)

func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isLetters(s string) bool {
	for _, c := range s {
		if !isLetter(c) {
			return false
		}
	}
	return true
}

// Creates a new [Store] instance. name may only contain upper- or
// lowercase Latin letters, since it is spliced into SQL directly.
func New(db *sql.DB, name string) (*Store, error) {
	if !isLetters(name) || name == "" {
		return nil, ErrBadName
	}

	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS ` + name + ` (
	key		TEXT PRIMARY KEY,
	value	BLOB
);`)
	if err != nil {
		return nil, err
	}
	return &Store{name: name, db: db}, nil
}

// Open opens (creating if needed) a sqlite database at path and a
// store named name inside it.
func Open(path, name string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return New(db, name)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Retrieve a value from the store. value must be a pointer or nil.
// If key is not present, [ErrNotFound] is returned. If value is nil,
// data read from the store is silently discarded.
func (s *Store) Get(key string, value any) error {
	var v []uint8
	if err := s.db.QueryRow(
		`SELECT value FROM `+s.name+` WHERE key = ?;`,
		key).Scan(&v); err == sql.ErrNoRows {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	dec := gob.NewDecoder(bytes.NewReader(v))
	return dec.Decode(value)
}

// Inserts a new key-value pair or updates an existing one.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return err
	}
	_, err := s.db.Exec(`
INSERT INTO `+s.name+` (key, value)
VALUES(?, ?)
ON CONFLICT(key)
DO UPDATE SET value=excluded.value;`,
		key, buf.Bytes())
	return err
}

// Deletes key from store without checking if it existed.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM `+s.name+` WHERE key = ?;`, key)
	return err
}

// Keys returns every key in the store.
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM ` + s.name + `;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
