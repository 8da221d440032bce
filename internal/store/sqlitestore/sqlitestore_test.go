package sqlitestore

import (
	"path/filepath"
	"testing"

	"github.com/aylinkr/todo/internal/model"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "todos.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadNeverSaved(t *testing.T) {
	s := open(t)
	items, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if found {
		t.Error("found: nothing was ever saved")
	}
	if items != nil {
		t.Errorf("items: got %v, want nil", items)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := open(t)
	original := []model.Todo{
		{ID: "a", Title: "Buy milk"},
		{ID: "b", Title: "Walk dog", Done: true},
		{ID: "c", Title: "Call mom"},
	}
	if err := s.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatal("found: snapshot was just saved")
	}
	if len(loaded) != len(original) {
		t.Fatalf("length: got %d, want %d", len(loaded), len(original))
	}
	for i := range original {
		if loaded[i] != original[i] {
			t.Errorf("item %d: got %+v, want %+v (order must survive)", i, loaded[i], original[i])
		}
	}
}

func TestSaveEmptySnapshot(t *testing.T) {
	s := open(t)
	if err := s.Save([]model.Todo{{ID: "a", Title: "x"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save([]model.Todo{}); err != nil {
		t.Fatal(err)
	}

	items, found, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Error("found: an empty snapshot is still a snapshot")
	}
	if len(items) != 0 {
		t.Errorf("items: got %v, want empty", items)
	}
}

func TestSaveReplacesWholesale(t *testing.T) {
	s := open(t)
	if err := s.Save([]model.Todo{{ID: "a", Title: "first"}, {ID: "b", Title: "second"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save([]model.Todo{{ID: "c", Title: "only"}}); err != nil {
		t.Fatal(err)
	}

	items, _, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ID != "c" {
		t.Errorf("items: got %+v, want the single replacement item", items)
	}
}
