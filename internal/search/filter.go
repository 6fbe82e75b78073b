package search

import (
	"strings"

	"github.com/Makepad-fr/todosearch/internal/model"
)

// Matches reports whether the item's title contains query, ignoring case.
func Matches(item model.TodoItem, query string) bool {
	return strings.Contains(strings.ToLower(item.Title), Normalize(query))
}

// Filter returns the items whose title contains query, in their original order.
// The input slice is never modified.
func Filter(items []model.TodoItem, query string) []model.TodoItem {
	q := Normalize(query)
	out := make([]model.TodoItem, 0, len(items))
	for _, it := range items {
		if Matches(it, q) {
			out = append(out, it)
		}
	}
	return out
}
