// Package sqlitestore persists snapshots in a single SQLite file. Each
// Save is a full table replace inside one transaction, keeping the same
// wholesale-snapshot contract as the JSON store.
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aylinkr/todo/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS todos (
	position  INTEGER PRIMARY KEY,
	id        TEXT NOT NULL,
	title     TEXT NOT NULL,
	completed INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS snapshot_meta (
	key   TEXT PRIMARY KEY,
	value INTEGER NOT NULL
);`

// Store wraps one SQLite database. The meta row distinguishes "never
// saved" from an empty snapshot.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Save(items []model.Todo) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM todos`); err != nil {
		return fmt.Errorf("clear todos: %w", err)
	}
	for i, it := range items {
		if _, err := tx.Exec(
			`INSERT INTO todos (position, id, title, completed) VALUES (?, ?, ?, ?)`,
			i, it.ID, it.Title, it.Done,
		); err != nil {
			return fmt.Errorf("insert todo: %w", err)
		}
	}
	if _, err := tx.Exec(
		`INSERT INTO snapshot_meta (key, value) VALUES ('saved', 1)
		 ON CONFLICT(key) DO UPDATE SET value = 1`,
	); err != nil {
		return fmt.Errorf("mark saved: %w", err)
	}
	return tx.Commit()
}

func (s *Store) Load() ([]model.Todo, bool, error) {
	var saved int
	err := s.db.QueryRow(`SELECT value FROM snapshot_meta WHERE key = 'saved'`).Scan(&saved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read meta: %w", err)
	}

	rows, err := s.db.Query(`SELECT id, title, completed FROM todos ORDER BY position`)
	if err != nil {
		return nil, false, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	items := []model.Todo{}
	for rows.Next() {
		var it model.Todo
		if err := rows.Scan(&it.ID, &it.Title, &it.Done); err != nil {
			return nil, false, fmt.Errorf("scan todo: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate todos: %w", err)
	}
	return items, true, nil
}
