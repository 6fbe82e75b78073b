package model

// TodoItem is one record served by the todos endpoint.
// Items are read-only once decoded; the program only filters them.
type TodoItem struct {
	UserID    int    `json:"userId" yaml:"user_id"`
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

const (
	LabelCompleted = "Completed"
	LabelPending   = "Pending"
)

// StatusLabel maps the completion flag to its display label.
func (t TodoItem) StatusLabel() string {
	if t.Completed {
		return LabelCompleted
	}
	return LabelPending
}

// Stats counts completed and pending items, used by the headers.
func Stats(items []TodoItem) (completed, pending int) {
	for _, it := range items {
		if it.Completed {
			completed++
		} else {
			pending++
		}
	}
	return
}
