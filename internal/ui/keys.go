package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the browser.
type keyMap struct {
	// Global
	Quit key.Binding
	Help key.Binding

	// List filters
	Category  key.Binding
	NextMonth key.Binding
	PrevMonth key.Binding
	Reset     key.Binding

	// List navigation
	PrevPage key.Binding
	NextPage key.Binding
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding

	// Detail
	Back key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Category: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "toggle category"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m/M", "change month"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "previous month"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset filters"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back to list"),
		),
	}
}

// listHelp and detailHelp adapt keyMap to help.KeyMap per route.
type listHelp keyMap

func (k listHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Category, k.NextMonth, k.PrevPage, k.NextPage, k.Open, k.Quit, k.Help}
}

func (k listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Category, k.NextMonth, k.PrevMonth, k.Reset},
		{k.PrevPage, k.NextPage, k.Up, k.Down, k.Open},
		{k.Help, k.Quit},
	}
}

type detailHelp keyMap

func (k detailHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

func (k detailHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Back, k.Quit}}
}
