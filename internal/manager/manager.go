// Package manager owns the working todo list and writes the full
// snapshot through to the configured store after every mutation.
package manager

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aylinkr/todo/internal/model"
	"github.com/aylinkr/todo/internal/store"
)

// ErrIndexOutOfRange reports a toggle or delete aimed outside the list.
var ErrIndexOutOfRange = errors.New("index out of range")

// Manager applies list mutations in memory and persists after each one.
// Persistence failures are logged and swallowed so the session keeps
// working in memory even when every save fails.
type Manager struct {
	items []model.Todo
	store store.Store
	log   zerolog.Logger
}

// New seeds the manager from the store's last snapshot. A missing or
// unreadable snapshot means an empty list; load errors are logged, never
// surfaced.
func New(st store.Store, log zerolog.Logger) *Manager {
	m := &Manager{store: st, log: log}
	items, found, err := st.Load()
	if err != nil {
		log.Error().Err(err).Msg("load snapshot")
		return m
	}
	if found {
		m.items = items
	}
	return m
}

// List returns a copy of the current sequence in insertion order.
func (m *Manager) List() []model.Todo {
	return append([]model.Todo(nil), m.items...)
}

// Len reports how many todos are currently tracked.
func (m *Manager) Len() int { return len(m.items) }

// Add appends a new todo built from title and persists.
func (m *Manager) Add(title string) model.Todo {
	t := model.New(title)
	m.items = append(m.items, t)
	m.persist()
	return t
}

// Toggle flips the completion flag at the 0-based index i and persists.
// An out-of-range index mutates nothing and triggers no save.
func (m *Manager) Toggle(i int) (model.Todo, error) {
	if i < 0 || i >= len(m.items) {
		return model.Todo{}, fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(m.items), i)
	}
	m.items[i].Done = !m.items[i].Done
	m.persist()
	return m.items[i], nil
}

// Delete removes the todo at the 0-based index i; later entries shift
// down by one. Same bounds contract as Toggle.
func (m *Manager) Delete(i int) (model.Todo, error) {
	if i < 0 || i >= len(m.items) {
		return model.Todo{}, fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(m.items), i)
	}
	removed := m.items[i]
	m.items = append(m.items[:i], m.items[i+1:]...)
	m.persist()
	return removed, nil
}

// Replace swaps in a whole new sequence and persists. Used by the
// interactive screen to write back its final state.
func (m *Manager) Replace(items []model.Todo) {
	m.items = append([]model.Todo(nil), items...)
	m.persist()
}

func (m *Manager) persist() {
	if err := m.store.Save(m.List()); err != nil {
		m.log.Error().Err(err).Msg("save snapshot")
	}
}
