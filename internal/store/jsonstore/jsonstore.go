package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aylinkr/todo/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

// DefaultFileName is the snapshot file used when none is configured.
const DefaultFileName = "todos.json"

// Store reads and writes one snapshot file. The file name is resolved
// against the current working directory on every call, not cached, so
// behavior follows chdir between calls.
type Store struct {
	fileName string
}

func New(fileName string) *Store {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Store{fileName: fileName}
}

func (s *Store) path() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, s.fileName), nil
}

func (s *Store) Load() ([]model.Todo, bool, error) {
	p, err := s.path()
	if err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read file: %w", err)
	}
	if len(b) == 0 {
		// An existing zero-length file is a snapshot of zero todos,
		// not "no data".
		return []model.Todo{}, true, nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	var items []model.Todo
	if err := dec.Decode(&items); err != nil {
		return nil, false, fmt.Errorf("json decode: %w", err)
	}
	if items == nil {
		items = []model.Todo{}
	}
	return items, true, nil
}

func (s *Store) Save(items []model.Todo) error {
	p, err := s.path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
