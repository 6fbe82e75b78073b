package ui

import (
	"fmt"

	"github.com/Makepad-fr/todosearch/internal/model"
)

const (
	AppTitle      = "Todo Search"
	LoadingText   = "Loading..."
	NoResultsText = "No results found"
)

// Row is the plain text of one result: "<title> (Status: <label>)".
func Row(it model.TodoItem) string {
	return fmt.Sprintf("%s (Status: %s)", it.Title, it.StatusLabel())
}

// StyledRow colours the status label and box with the current theme.
func StyledRow(it model.TodoItem) string {
	t := Current()
	box, color := t.BoxPending, t.Pending
	if it.Completed {
		box, color = t.BoxCompleted, t.Completed
	}
	return fmt.Sprintf("%s %s (Status: %s)", C(color, box), it.Title, C(color, it.StatusLabel()))
}

// Header shows completed/pending counts of the displayed items
// against the size of the fetched list.
func Header(shown []model.TodoItem, total int) string {
	t := Current()
	c, p := model.Stats(shown)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d/%d",
		C(t.Title, AppTitle),
		C(t.Completed, t.SymCompleted), c,
		C(t.Pending, t.SymPending), p,
		C(t.Accent, "Shown"), len(shown), total,
	)
}

// ResultLines builds the panel body for a finished search.
func ResultLines(query string, shown []model.TodoItem, total int) []string {
	t := Current()
	c, _ := model.Stats(shown)

	lines := []string{
		Header(shown, total),
		C(t.Muted, fmt.Sprintf("query: %q", query)),
		C(t.Muted, ProgressBar(c, len(shown), 28)),
		"",
	}
	if len(shown) == 0 {
		return append(lines, C(t.Muted, NoResultsText))
	}
	for i, it := range shown {
		title := it
		title.Title = Truncate(it.Title, 80)
		lines = append(lines, fmt.Sprintf("%s %s", C(dim, fmt.Sprintf("%2d.", i+1)), StyledRow(title)))
	}
	return lines
}
