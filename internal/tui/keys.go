package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap only binds non-printable keys; every rune goes to the search field.
type keyMap struct {
	Submit   key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		PrevPage: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next page")),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy title")),
		Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Up, k.Down, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Copy, k.Quit},
		{k.Up, k.Down, k.PrevPage, k.NextPage},
	}
}
