package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todosearch/internal/loader"
	"github.com/Makepad-fr/todosearch/internal/logging"
	"github.com/Makepad-fr/todosearch/internal/search"
	"github.com/Makepad-fr/todosearch/internal/store/jsonstore"
	"github.com/Makepad-fr/todosearch/internal/ui"
)

func newSearchCommand(a *app) *cobra.Command {
	var output, save string

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Fetch the todo list once and print the items matching a query",
		Long: `Fetch the todo list once and print every item whose title contains the
query, ignoring case. Multiple arguments are joined with single spaces.

Exit codes: 0 on success (also when nothing matches), 1 when the list
cannot be fetched, 2 on an empty query or bad flags.

Examples:
  todosearch search buy
  todosearch search "buy eggs" -o json
  todosearch search milk --save milk.json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, strings.Join(args, " "), output, save)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(FormatText), "output format: text, markdown, json or yaml")
	cmd.Flags().StringVar(&save, "save", "", "also write the matching items to this JSON file")
	return cmd
}

func (a *app) searchLogger(w io.Writer) (*log.Logger, io.Closer, error) {
	if a.cfg.Log.File != "" {
		return logging.OpenFile(a.cfg.Log.File, a.cfg.Log.Level, a.cfg.Log.Format)
	}
	return logging.New(w, a.cfg.Log.Level, a.cfg.Log.Format), io.NopCloser(nil), nil
}

// runSearch runs fetch, validate + filter and render in sequence.
func (a *app) runSearch(cmd *cobra.Command, query, output, save string) error {
	format, err := ParseFormat(output)
	if err != nil {
		return failWith(ExitUsage, err.Error())
	}
	if err := search.Validate(query); err != nil {
		return failWith(ExitUsage, search.RequiredMessage)
	}

	logger, closer, err := a.searchLogger(cmd.ErrOrStderr())
	if err != nil {
		return failWith(ExitError, "log: "+err.Error())
	}
	defer closer.Close()

	st := search.NewState()
	st.BeginLoad()
	logger.Debug("fetching todos", "endpoint", loader.Endpoint)

	items, err := a.newFetcher().FetchTodos(cmd.Context())
	if err != nil {
		st.LoadFailed(loader.FetchFailedMessage)
		logger.Error("todos fetch failed", "err", err)
		return failWith(ExitError, st.Err())
	}
	st.LoadSucceeded(items)
	logger.Debug("todos loaded", "count", len(items))

	if err := st.Submit(query); err != nil {
		return failWith(ExitUsage, st.InputErr())
	}
	logger.Debug("search", "query", st.Query(), "matches", len(st.Displayed()))

	if err := WriteResults(cmd.OutOrStdout(), format, st); err != nil {
		return failWith(ExitError, "output: "+err.Error())
	}

	if save != "" {
		p, err := jsonstore.Save(save, st.Displayed())
		if err != nil {
			return failWith(ExitError, "save: "+err.Error())
		}
		ui.OK(cmd.ErrOrStderr(), fmt.Sprintf("saved %d items to %s", len(st.Displayed()), p))
	}
	return nil
}
