package cli

import (
	"errors"
	"io"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todosearch/internal/config"
	"github.com/Makepad-fr/todosearch/internal/loader"
	"github.com/Makepad-fr/todosearch/internal/logging"
	"github.com/Makepad-fr/todosearch/internal/tui"
	"github.com/Makepad-fr/todosearch/internal/ui"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Options tune the command tree. Zero values are fine for main.
type Options struct {
	Version string
	Stdout  io.Writer
	Stderr  io.Writer

	// HTTPClient replaces the loader's client (for testing).
	HTTPClient *http.Client
}

// exitError carries the exit code of a failed command.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func failWith(code int, msg string) error { return &exitError{code: code, msg: msg} }

// app holds flag values and the loaded config shared by the commands.
type app struct {
	opts Options
	cfg  config.Config

	configPath string
	theme      string
	logLevel   string
	logFile    string
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opts Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	root := NewRootCommand(opts)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.msg != "" {
			ui.Fail(opts.Stderr, ee.msg)
		}
		return ee.code
	}
	// flag and argument errors from cobra
	ui.Fail(opts.Stderr, err.Error())
	return ExitUsage
}

// NewRootCommand builds the command tree.
func NewRootCommand(opts Options) *cobra.Command {
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "todosearch",
		Short: "Search a remote todo list from the terminal",
		Long: `todosearch fetches the todo list from ` + loader.Endpoint + ` once
and lets you filter it by title. Matching is a case-insensitive substring test.

Run without arguments for the interactive search box, or use
"todosearch search <query>" for a one-shot search.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.loadConfig() },
		RunE:              a.runInteractive,
	}
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default "+config.ConfigFile()+")")
	pf.StringVar(&a.theme, "theme", "", "colour theme: classic, neon or mono")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFile, "log-file", "", "append logs to this file")

	root.AddCommand(newSearchCommand(a))
	root.AddCommand(newVersionCommand(a))
	return root
}

// loadConfig reads the config file, then applies flag overrides.
func (a *app) loadConfig() error {
	var (
		cfg config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return failWith(ExitUsage, "config: "+err.Error())
	}

	if a.theme != "" {
		cfg.Theme = a.theme
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}

	ui.SetTheme(cfg.Theme)
	a.cfg = cfg
	return nil
}

func (a *app) newFetcher() *loader.Client {
	if a.opts.HTTPClient != nil {
		return loader.NewWithHTTPClient(a.opts.HTTPClient)
	}
	// validated by config.LoadFile
	timeout, _ := a.cfg.Timeout()
	return loader.New(timeout)
}

// runInteractive starts the Bubble Tea search box.
func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	logger, closer, err := logging.OpenFile(a.cfg.Log.File, a.cfg.Log.Level, a.cfg.Log.Format)
	if err != nil {
		return failWith(ExitError, "log: "+err.Error())
	}
	defer closer.Close()

	var popts []tea.ProgramOption
	if a.cfg.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}

	err = tui.Run(tui.Options{
		Fetcher:   a.newFetcher(),
		Logger:    logger,
		CharLimit: a.cfg.CharLimit,
	}, popts...)
	if err != nil {
		return failWith(ExitError, "tui: "+err.Error())
	}
	return nil
}
