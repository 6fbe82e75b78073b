// Package tui is the interactive search widget: one fetch on start,
// a required search field, and the filtered result list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todosearch/internal/loader"
	"github.com/Makepad-fr/todosearch/internal/logging"
	"github.com/Makepad-fr/todosearch/internal/model"
	"github.com/Makepad-fr/todosearch/internal/search"
	"github.com/Makepad-fr/todosearch/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 12
	// lines around the list: title, label, input, error, status, help, border
	chromeHeight = 12
)

// Fetcher loads the todo list. *loader.Client implements it.
type Fetcher interface {
	FetchTodos(ctx context.Context) ([]model.TodoItem, error)
}

// Options configures the TUI.
type Options struct {
	Fetcher   Fetcher
	Logger    *log.Logger
	CharLimit int
}

type todosLoadedMsg struct {
	items []model.TodoItem
}

type todosFailedMsg struct {
	err error
}

type copiedMsg struct {
	title string
	err   error
}

// Model is the Bubble Tea model for the search widget.
type Model struct {
	opts    Options
	state   *search.State
	input   textinput.Model
	list    list.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	width    int
	height   int
	notice   string
	quitting bool
}

// New creates the widget. The load status is already "loading": the
// fetch command is issued by Init, exactly once.
func New(opts Options) Model {
	if opts.Fetcher == nil {
		opts.Fetcher = loader.New(0)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.CharLimit <= 0 {
		opts.CharLimit = 200
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter search query"
	ti.CharLimit = opts.CharLimit
	ti.Focus()

	l := list.New(nil, itemDelegate{}, defaultWidth, defaultHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = helpStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle

	st := search.NewState()
	st.BeginLoad()

	return Model{
		opts:    opts,
		state:   st,
		input:   ti,
		list:    l,
		spinner: sp,
		help:    h,
		keys:    defaultKeyMap(),
	}
}

// Run starts the program and blocks until the user quits.
func Run(opts Options, programOpts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(opts), programOpts...)
	_, err := p.Run()
	return err
}

func fetchTodos(f Fetcher) tea.Cmd {
	return func() tea.Msg {
		items, err := f.FetchTodos(context.Background())
		if err != nil {
			return todosFailedMsg{err: err}
		}
		return todosLoadedMsg{items: items}
	}
}

func (m Model) Init() tea.Cmd {
	m.opts.Logger.Debug("fetching todos", "endpoint", loader.Endpoint)
	return tea.Batch(fetchTodos(m.opts.Fetcher), m.spinner.Tick, textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case todosLoadedMsg:
		m.state.LoadSucceeded(msg.items)
		m.opts.Logger.Info("todos loaded", "count", len(msg.items))
		cmd := m.syncList()
		return m, cmd

	case todosFailedMsg:
		m.state.LoadFailed(loader.FetchFailedMessage)
		m.opts.Logger.Error("todos fetch failed", "err", msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.opts.Logger.Warn("clipboard write failed", "err", msg.err)
			m.notice = "Copy failed"
		} else {
			m.notice = "Copied: " + msg.title
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			cmd := m.submit()
			return m, cmd
		case key.Matches(msg, m.keys.Copy):
			return m, m.copySelected()
		case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PrevPage, m.keys.NextPage):
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the field and re-filters; an invalid value only
// sets the inline error.
func (m *Model) submit() tea.Cmd {
	m.notice = ""
	if err := m.state.Submit(m.input.Value()); err != nil {
		m.opts.Logger.Debug("search rejected", "err", err)
		return nil
	}
	m.opts.Logger.Debug("search", "query", m.state.Query(), "matches", len(m.state.Displayed()))
	return m.syncList()
}

// syncList mirrors the displayed collection into the list component.
func (m *Model) syncList() tea.Cmd {
	shown := m.state.Displayed()
	items := make([]list.Item, len(shown))
	for i, it := range shown {
		items[i] = listItem{todo: it}
	}
	cmd := m.list.SetItems(items)
	m.list.ResetSelected()
	return cmd
}

func (m Model) copySelected() tea.Cmd {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	title := it.todo.Title
	return func() tea.Msg {
		return copiedMsg{title: title, err: clipboard.WriteAll(title)}
	}
}

func (m *Model) resize() {
	w := max(m.width-4, 20)
	m.list.SetSize(w, max(m.height-chromeHeight, 3))
	m.input.Width = max(w-len(m.input.Prompt)-1, 10)
	m.help.Width = w
}

func (m Model) counts() string {
	done, pending := model.Stats(m.state.Displayed())
	return fmt.Sprintf("%s %d  %s %d  %s %d",
		completedStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), len(m.state.Items()),
	)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(ui.AppTitle))
	if m.state.Status() == search.StatusSucceeded {
		b.WriteString("   " + m.counts())
	}
	b.WriteString("\n\n")

	b.WriteString("Search\n")
	b.WriteString(m.input.View() + "\n")
	if e := m.state.InputErr(); e != "" {
		b.WriteString(errorStyle.Render(e) + "\n")
	}
	b.WriteString("\n")

	if m.state.Loading() {
		b.WriteString(m.spinner.View() + " " + ui.LoadingText + "\n")
	}
	if e := m.state.Err(); e != "" {
		b.WriteString(errorStyle.Render(e) + "\n")
	}
	if m.state.ShowNoResults() {
		b.WriteString(mutedStyle.Render(ui.NoResultsText) + "\n")
	}
	if len(m.state.Displayed()) > 0 {
		b.WriteString(m.list.View() + "\n")
	}
	if m.notice != "" {
		b.WriteString(mutedStyle.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return panelString(b.String())
}
