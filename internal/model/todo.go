package model

import "github.com/google/uuid"

// Todo is the domain model for one task.
// Kept minimal on purpose; it’s easy to evolve.
type Todo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"isCompleted"`
}

// New builds a Todo with a fresh unique id and an open completion flag.
// Titles are stored as given; empty strings are allowed.
func New(title string) Todo {
	return Todo{ID: uuid.NewString(), Title: title}
}

// Render returns the display form: title plus a completion mark.
func (t Todo) Render() string {
	mark := "❌"
	if t.Done {
		mark = "✅"
	}
	return t.Title + " - " + mark
}
