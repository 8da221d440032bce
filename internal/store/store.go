// Package store specifies the persistence strategy for todo snapshots.
// Sub packages implement the interface with different storage backends.
package store

import "github.com/aylinkr/todo/internal/model"

// Store persists full snapshots of the todo list. Implementations never
// retain the slice they are given; each Save replaces the previous
// snapshot wholesale.
type Store interface {
	// Save overwrites the persisted snapshot with items.
	Save(items []model.Todo) error
	// Load returns the last snapshot in its original order. found is
	// false when no snapshot exists (first run); a snapshot of zero
	// todos comes back as an empty slice with found true.
	Load() (items []model.Todo, found bool, err error)
}
