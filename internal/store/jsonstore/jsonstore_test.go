package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aylinkr/todo/internal/model"
)

func TestLoadMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	s := New("")

	items, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if found {
		t.Error("found: a missing file is not a snapshot")
	}
	if items != nil {
		t.Errorf("items: got %v, want nil", items)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s := New("")

	items, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Error("found: a zero-length file is a snapshot of zero todos")
	}
	if len(items) != 0 {
		t.Errorf("items: got %v, want empty", items)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())
	s := New("")

	original := []model.Todo{
		{ID: "a1", Title: "Buy milk"},
		{ID: "b2", Title: "Walk dog", Done: true},
		{ID: "c3", Title: ""},
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
			t.Errorf("item %d: got %+v, want %+v", i, loaded[i], original[i])
		}
	}
}

func TestSaveEmptySnapshot(t *testing.T) {
	chdir(t, t.TempDir())
	s := New("")

	if err := s.Save([]model.Todo{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	items, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Error("found: an empty snapshot is still a snapshot")
	}
	if len(items) != 0 {
		t.Errorf("items: got %v, want empty", items)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	chdir(t, t.TempDir())
	s := New("")

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

func TestLoadRejectsBadContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "not json at all"},
		{"wrong shape", `{"id":"x"}`},
		{"unknown field", `[{"id":"x","title":"t","isCompleted":false,"priority":3}]`},
		{"wrong field type", `[{"id":"x","title":"t","isCompleted":"yes"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)
			if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			s := New("")
			if _, _, err := s.Load(); err == nil {
				t.Error("Load: want a decode error, got nil")
			}
		})
	}
}

func TestCustomFileName(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	s := New("other.json")

	if err := s.Save([]model.Todo{{ID: "a", Title: "x"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "other.json")); err != nil {
		t.Errorf("expected other.json in the working directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultFileName)); !os.IsNotExist(err) {
		t.Error("default file must not be touched")
	}
}

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (stand-in for t.Chdir, which
// requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
