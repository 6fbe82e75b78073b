package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Makepad-fr/todosearch/internal/model"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
)

// Markdown builds the markdown document for a finished search.
func Markdown(query string, shown []model.TodoItem, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", AppTitle)
	fmt.Fprintf(&b, "Results for **%s** (%d of %d)\n\n", mdEscaper.Replace(query), len(shown), total)
	if len(shown) == 0 {
		b.WriteString(NoResultsText + "\n")
		return b.String()
	}
	for _, it := range shown {
		fmt.Fprintf(&b, "- %s\n", mdEscaper.Replace(Row(it)))
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal, wrapping at width.
// Without colour the plain "notty" style is used.
func RenderMarkdown(md string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if ColorEnabled() {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
