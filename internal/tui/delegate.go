package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/todosearch/internal/model"
	"github.com/Makepad-fr/todosearch/internal/ui"
)

// listItem adapts model.TodoItem to bubbles/list.Item
type listItem struct {
	todo model.TodoItem
}

func (i listItem) Title() string       { return ui.Row(i.todo) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Title }

// statusSuffixWidth is len(" (Status: Completed)") plus box and cursor.
const statusSuffixWidth = 20 + 4

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}

	title := ui.Truncate(it.todo.Title, max(m.Width()-statusSuffixWidth, 10))
	box := mutedStyle.Render(boxUnchecked)
	text := title
	label := pendingStyle.Render(it.todo.StatusLabel())
	if it.todo.Completed {
		box = completedStyle.Render(boxChecked)
		text = doneStyle.Render(title)
		label = completedStyle.Render(it.todo.StatusLabel())
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s (Status: %s)", prefix, box, text, label)
}
