package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/todosearch/internal/model"
	"github.com/Makepad-fr/todosearch/internal/search"
	"github.com/Makepad-fr/todosearch/internal/ui"
)

// OutputFormat selects how search results are printed.
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatMarkdown OutputFormat = "markdown"
	FormatJSON     OutputFormat = "json"
	FormatYAML     OutputFormat = "yaml"
)

const markdownWidth = 80

// ParseFormat accepts the names above, case-insensitively. "md" is
// an alias for markdown.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported output format: %q (want text, markdown, json or yaml)", s)
	}
}

// SearchResultOutput is the json/yaml document printed by search.
type SearchResultOutput struct {
	Query   string           `json:"query" yaml:"query"`
	Count   int              `json:"count" yaml:"count"`
	Total   int              `json:"total" yaml:"total"`
	Results []model.TodoItem `json:"results" yaml:"results"`
}

func newSearchResultOutput(st *search.State) SearchResultOutput {
	shown := st.Displayed()
	if shown == nil {
		shown = []model.TodoItem{}
	}
	return SearchResultOutput{
		Query:   st.Query(),
		Count:   len(shown),
		Total:   len(st.Items()),
		Results: shown,
	}
}

// WriteResults renders the state's displayed collection in the given format.
func WriteResults(w io.Writer, format OutputFormat, st *search.State) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newSearchResultOutput(st))

	case FormatYAML:
		data, err := yaml.Marshal(newSearchResultOutput(st))
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(data)
		return err

	case FormatMarkdown:
		out, err := ui.RenderMarkdown(ui.Markdown(st.Query(), st.Displayed(), len(st.Items())), markdownWidth)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err

	default:
		return ui.Panel(w, ui.ResultLines(st.Query(), st.Displayed(), len(st.Items())))
	}
}
