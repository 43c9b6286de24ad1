package model

// Todo is the domain model for a todo entry.
// ID is position-derived: the store keeps IDs equal to 1..N in order.
type Todo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Draft holds the editable fields of an open form before they are committed.
// It is a value copy, never a view into the store.
type Draft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DraftOf copies the editable fields of t.
func DraftOf(t Todo) Draft {
	return Draft{Name: t.Name, Description: t.Description}
}

// IsEmpty reports whether both fields are blank.
func (d Draft) IsEmpty() bool {
	return d.Name == "" && d.Description == ""
}
