// Package memstore keeps the snapshot in process memory only; state is
// gone when the owning process ends.
package memstore

import "github.com/aylinkr/todo/internal/model"

// Store holds the last saved snapshot in a private slice, initially empty.
type Store struct {
	items []model.Todo
}

func New() *Store { return &Store{} }

// Save replaces the held snapshot wholesale. The input is copied so the
// caller's working slice is never aliased.
func (s *Store) Save(items []model.Todo) error {
	s.items = append([]model.Todo(nil), items...)
	return nil
}

// Load reports no snapshot while the held sequence is empty, otherwise
// returns a copy of it.
func (s *Store) Load() ([]model.Todo, bool, error) {
	if len(s.items) == 0 {
		return nil, false, nil
	}
	return append([]model.Todo(nil), s.items...), true, nil
}
