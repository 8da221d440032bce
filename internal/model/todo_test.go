package model

import "testing"

func TestNew(t *testing.T) {
	td := New("Buy milk")
	if td.Title != "Buy milk" {
		t.Errorf("Title: got %q, want %q", td.Title, "Buy milk")
	}
	if td.Done {
		t.Error("Done: new todos must start incomplete")
	}
	if td.ID == "" {
		t.Error("ID: must be assigned at creation")
	}
}

func TestNewUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		td := New("x")
		if seen[td.ID] {
			t.Fatalf("duplicate id %q", td.ID)
		}
		seen[td.ID] = true
	}
}

func TestNewAllowsEmptyTitle(t *testing.T) {
	td := New("")
	if td.Title != "" {
		t.Errorf("Title: got %q, want empty", td.Title)
	}
	if td.ID == "" {
		t.Error("ID: must be assigned even for empty titles")
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		todo Todo
		want string
	}{
		{"pending", Todo{Title: "Buy milk"}, "Buy milk - ❌"},
		{"done", Todo{Title: "Buy milk", Done: true}, "Buy milk - ✅"},
		{"empty title", Todo{}, " - ❌"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.todo.Render(); got != tt.want {
				t.Errorf("Render: got %q, want %q", got, tt.want)
			}
		})
	}
}
