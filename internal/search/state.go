package search

import (
	"slices"

	"github.com/Makepad-fr/todosearch/internal/model"
)

// LoadStatus tracks the single fetch of the widget's lifetime.
type LoadStatus int

const (
	StatusNotStarted LoadStatus = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "not-started"
	}
}

// State owns everything the widget renders: the fetched items, the
// displayed subset, the load status and the form errors.
// It is not safe for concurrent use; the owning UI loop serializes access.
type State struct {
	status     LoadStatus
	all        []model.TodoItem
	shown      []model.TodoItem
	query      string
	errMsg     string
	inputErr   string
	submitting bool
}

func NewState() *State {
	return &State{}
}

// BeginLoad moves a fresh state to loading. It reports false if a load
// was already started, so the fetch runs at most once.
func (s *State) BeginLoad() bool {
	if s.status != StatusNotStarted {
		return false
	}
	s.status = StatusLoading
	return true
}

// LoadSucceeded replaces both collections with the fetched items.
func (s *State) LoadSucceeded(items []model.TodoItem) {
	s.all = slices.Clone(items)
	s.shown = slices.Clone(items)
	s.errMsg = ""
	s.status = StatusSucceeded
}

// LoadFailed records the failure. The displayed items are left as they were.
func (s *State) LoadFailed(msg string) {
	s.errMsg = msg
	s.status = StatusFailed
}

// Submit validates raw and, when valid, re-applies the filter with its
// normalized form. An invalid submit only sets the inline error.
func (s *State) Submit(raw string) error {
	s.submitting = true
	defer func() { s.submitting = false }()

	if err := Validate(raw); err != nil {
		s.inputErr = RequiredMessage
		return err
	}
	s.inputErr = ""
	s.query = Normalize(raw)
	s.shown = Filter(s.all, s.query)
	return nil
}

func (s *State) Status() LoadStatus { return s.status }

func (s *State) Loading() bool { return s.status == StatusLoading }

// Items returns the full fetched collection.
func (s *State) Items() []model.TodoItem { return s.all }

// Displayed returns the current view.
func (s *State) Displayed() []model.TodoItem { return s.shown }

// Query is the last accepted, normalized query ("" before any search).
func (s *State) Query() string { return s.query }

// Err is the fetch error message, empty unless the load failed.
func (s *State) Err() string { return s.errMsg }

// InputErr is the inline validation message for the search field.
func (s *State) InputErr() string { return s.inputErr }

func (s *State) Submitting() bool { return s.submitting }

// ShowNoResults is true once loading has finished and nothing is displayed.
func (s *State) ShowNoResults() bool {
	if s.status != StatusSucceeded && s.status != StatusFailed {
		return false
	}
	return len(s.shown) == 0
}
