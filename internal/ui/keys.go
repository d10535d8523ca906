package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap describes the table bindings for the bottom hint and the help popup.
// Key dispatch itself lives in the input package.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Page      key.Binding
	Jump      key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	Clear     key.Binding
	Download  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Page: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("PgUp/PgDn", "page up/down"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g", "G", "home", "end"),
			key.WithHelp("gg/G", "top/bottom"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x", "enter"),
			key.WithHelp("space", "toggle"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "select/deselect all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		Download: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "download selected"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is shown under the table
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SelectAll, k.Download, k.Help, k.Quit}
}

// FullHelp groups the bindings by section for the help popup
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Page, k.Jump},
		{k.Toggle, k.SelectAll, k.Clear},
		{k.Download, k.Help, k.Quit},
	}
}

// syncDownload dims the download hint while nothing is selected
func (k *keyMap) syncDownload(hasSelection bool) {
	k.Download.SetEnabled(hasSelection)
	k.Clear.SetEnabled(hasSelection)
}
