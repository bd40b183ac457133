package model

// Task is a single to-do entry.
//
// ID is assigned once at creation and never changes; Name and Completed are the
// only mutable fields.
type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}
